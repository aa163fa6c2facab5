package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var session = sync.OnceValue(func() string {
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
})

// puzzleInput returns the input for year/day from the input directory,
// fetching and caching it when a session key is available.
func puzzleInput(year, day int) []byte {
	filename := filepath.Join(flagInputDir, fmt.Sprint(year), fmt.Sprintf("%d.input", day))
	if b, err := os.ReadFile(filename); err == nil {
		return b
	}
	if session() == "" {
		logger.Fatalf("no input at %s and no session key to fetch it", filename)
	}
	body, err := fetch(fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day))
	if err != nil {
		logger.Fatal(err)
	}
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	logger.WithField("file", filename).Debug("cached puzzle input")
	return body
}

func fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
