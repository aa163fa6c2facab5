// Package aoc runs Advent of Code solvers against their samples and
// inputs. (forked from maisem/aoc, which was forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// extractSamples returns the samples found in the doc comments of the
// solver methods in src, keyed by method name. A sample without input
// reuses the input of the sample before it.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples, nil
}

// Puzzle is the per-run state handed to a solver. Solvers embed a
// *Puzzle and read their input through it.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	log     *logrus.Entry
}

// Input returns the sample input in sample mode and the real input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return puzzleInput(p.year, p.day.day)
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input along with its row
// number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		p.log.Fatalf("reading input: %v", err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns every line of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// Log returns the logger for the part being run.
func (p *Puzzle) Log() logrus.FieldLogger {
	return p.log
}

// Debugf logs at debug level while running the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		p.log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of x named D{day}p{part}. x must
// be a pointer to a struct and the methods must take no arguments and
// return any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s: got %s; want func() any", mn, vt.Method(i).Type)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputDir   string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input", ".", "directory holding <year>/<day>.input files")
	flag.IntVar(&Workers, "workers", Workers, "worker pool size for Parallel")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	if flagDebug {
		logger.SetLevel(logrus.DebugLevel)
	}
})

var logger = logrus.New()

var (
	pass = color.New(color.FgGreen).SprintFunc()
	fail = color.New(color.FgRed, color.Bold).SprintFunc()
)

// runDay runs every part of d, sample first. It stops at the first
// sample that does not produce its wanted answer.
func runDay(slvr any, year int, d day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	fmt.Println("Running day", d.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			p.log = logger.WithFields(logrus.Fields{
				"day":    d.day,
				"part":   ps.Part,
				"sample": sm,
			})
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v)\n", ps.Part, got, took)
				continue
			}
			want := p.Sample().want
			if fmt.Sprint(got) != want {
				fmt.Printf("part %s: %v %s; want %v\n", ps.Part, got, fail("FAIL"), want)
				return
			}
			fmt.Printf("part %s sample: %v %s (%v)\n", ps.Part, got, pass("ok"), took)
		}
	}
}

// Run runs the D{day}p{part} methods of slvr, which must be a pointer
// to a struct embedding *Puzzle. src is the solver's source, used to
// extract the samples from the methods' doc comments.
func Run(year int, src []byte, slvr any) {
	initFlags()
	samples, err := extractSamples(src)
	if err != nil {
		logger.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		logger.Fatal(err)
	}

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			logger.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, d, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		runDay(slvr, year, days[d], samples)
		fmt.Println()
	}
}
