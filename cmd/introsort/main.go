// introsort 표준 입력 한 줄의 쉼표 구분 숫자를 정렬해서 출력한다.
//
//	$ echo "1.7, 1.0, 3.3, 2.1, 0.3" | introsort
//	[0.3, 1, 1.7, 2.1, 3.3]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/rlaau/sortbench/introsort"
)

const prompt = "Enter numbers separated by a comma : "

func main() {
	quiet := flag.Bool("quiet", false, "프롬프트 출력 안함")
	verbose := flag.Bool("v", false, "정렬 통계 로그")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := newLogger(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var promptOut io.Writer
	if !*quiet && isTerminal(os.Stdin) {
		promptOut = os.Stderr
	}
	if err := run(os.Stdin, os.Stdout, promptOut, logger); err != nil {
		logger.Error("정렬 실패", zap.Error(err))
		os.Exit(1)
	}
}

// run 한 줄 읽기 -> 파싱 -> 정렬 -> 출력. promptOut이 nil이면 프롬프트 생략.
func run(in io.Reader, out, promptOut io.Writer, logger *zap.Logger) error {
	if promptOut != nil {
		fmt.Fprint(promptOut, prompt)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "read input")
	}

	numbers, err := parseNumbers(line)
	if err != nil {
		return err
	}
	_, st := introsort.SortWithStats(numbers)
	logger.Debug("정렬 완료",
		zap.Int("n", len(numbers)),
		zap.Int("partitions", st.Partitions),
		zap.Int("insertion_passes", st.InsertionPasses),
		zap.Int("heap_fallbacks", st.HeapFallbacks),
		zap.Int("max_depth", st.MaxDepth))

	_, err = fmt.Fprintln(out, formatNumbers(numbers))
	return errors.Wrap(err, "write output")
}

// parseNumbers "1, 2.5,-3" -> [1 2.5 -3]. 빈 줄은 빈 슬라이스.
func parseNumbers(line string) ([]float64, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return []float64{}, nil
	}
	tokens := strings.Split(line, ",")
	numbers := make([]float64, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d (%q)", i+1, tok)
		}
		numbers[i] = v
	}
	return numbers, nil
}

// formatNumbers [a, b, c] 형식, 각 값은 가장 짧은 표현
func formatNumbers(numbers []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range numbers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	cfg := zap.Config{
		Level:            lvl,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}
