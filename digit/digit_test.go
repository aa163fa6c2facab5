package digit

import (
	"errors"
	"slices"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	for _, tok := range All() {
		if got, err := FromValue(tok.Value()); err != nil || got != tok {
			t.Errorf("FromValue(%d) = %v, %v; want %v", tok.Value(), got, err, tok)
		}
		if got, err := FromWord(tok.Word()); err != nil || got != tok {
			t.Errorf("FromWord(%q) = %v, %v; want %v", tok.Word(), got, err, tok)
		}
	}
}

func TestFromValue(t *testing.T) {
	tests := []struct {
		in      int
		want    Token
		wantErr bool
	}{
		{in: 0, want: Zero},
		{in: 7, want: Seven},
		{in: 9, want: Nine},
		{in: 10, wantErr: true},
		{in: -1, wantErr: true},
		{in: 256, wantErr: true},
		{in: 263, wantErr: true},
	}
	for _, tt := range tests {
		got, err := FromValue(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("FromValue(%d) err = %v, want ErrOutOfRange", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FromValue(%d) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Token
		wantErr bool
	}{
		{in: "0", want: Zero},
		{in: "5", want: Five},
		{in: "three", want: Three},
		{in: "nine", want: Nine},
		{in: "Three", wantErr: true},
		{in: " one", wantErr: true},
		{in: "one ", wantErr: true},
		{in: "12", wantErr: true},
		{in: "", wantErr: true},
		{in: "x", wantErr: true},
		{in: "eigh", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrNoMatch) {
				t.Errorf("Parse(%q) err = %v, want ErrNoMatch", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Parse(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestWordLen(t *testing.T) {
	want := []int{4, 3, 3, 5, 4, 4, 3, 5, 5, 4}
	for i, tok := range All() {
		if got := tok.WordLen(); got != want[i] {
			t.Errorf("%v.WordLen() = %d, want %d", tok, got, want[i])
		}
	}
	if got := Token(12).String(); got != "Token(12)" {
		t.Errorf("Token(12).String() = %q", got)
	}
}

// TestTables checks that the lookup tables list exactly the lengths of
// the words starting and ending with each letter.
func TestTables(t *testing.T) {
	wantStart := map[byte][]int{}
	wantEnd := map[byte][]int{}
	add := func(m map[byte][]int, c byte, n int) {
		if !slices.Contains(m[c], n) {
			m[c] = append(m[c], n)
		}
	}
	for _, tok := range All() {
		w := tok.Word()
		add(wantStart, w[0], len(w))
		add(wantEnd, w[len(w)-1], len(w))
	}
	for c := 0; c < 256; c++ {
		for _, tc := range []struct {
			name string
			got  []int
			want []int
		}{
			{"Starting", Starting(byte(c)), wantStart[byte(c)]},
			{"Ending", Ending(byte(c)), wantEnd[byte(c)]},
		} {
			want := slices.Clone(tc.want)
			slices.Sort(want)
			slices.Reverse(want)
			if !slices.Equal(tc.got, want) {
				t.Errorf("%s(%q) = %v, want %v", tc.name, c, tc.got, want)
			}
		}
	}
}

func TestFromByte(t *testing.T) {
	for c := 0; c < 256; c++ {
		got, ok := FromByte(byte(c))
		isDigit := c >= '0' && c <= '9'
		if ok != isDigit {
			t.Errorf("FromByte(%q) ok = %v", c, ok)
			continue
		}
		if ok && got.Value() != c-'0' {
			t.Errorf("FromByte(%q) = %v", c, got)
		}
	}
}
