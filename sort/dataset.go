package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var patternNames = []string{"random", "sorted", "reversed", "equal", "sawtooth", "organpipe"}

// generateData 패턴별 데이터 생성. 같은 seed면 같은 데이터.
func generateData(pattern string, size int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, size)
	for i := 0; i < size; i++ {
		switch pattern {
		case "random":
			data[i] = r.Intn(1000000)
		case "sorted":
			data[i] = i
		case "reversed":
			data[i] = size - i
		case "equal":
			data[i] = 7
		case "sawtooth":
			data[i] = i % 1000
		case "organpipe":
			data[i] = min(i, size-i)
		}
	}
	return data
}

func datasetName(pattern string, size int) string {
	return fmt.Sprintf("%s-%d", pattern, size)
}

// writeDataToFile 한 줄에 하나씩 (큰 버퍼 사용)
func writeDataToFile(data []int, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create data file")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)
	var builder strings.Builder
	builder.Grow(min(len(data), 10000) * 8)

	for i, num := range data {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(strconv.Itoa(num))

		// 주기적으로 버퍼로 넘겨서 메모리 사용량 제어
		if i%10000 == 0 {
			if _, err := writer.WriteString(builder.String()); err != nil {
				return errors.Wrap(err, "write data file")
			}
			builder.Reset()
		}
	}
	if _, err := writer.WriteString(builder.String()); err != nil {
		return errors.Wrap(err, "write data file")
	}
	return errors.Wrap(writer.Flush(), "flush data file")
}

// readDataFromFile writeDataToFile의 역. 빈 줄은 건너뛴다.
func readDataFromFile(filename string) ([]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open data file")
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat data file")
	}

	// 대략적인 개수 추정 (평균 6자리 + 개행)
	data := make([]int, 0, int(fileInfo.Size()/7))

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		num, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", filename, line)
		}
		data = append(data, num)
	}
	return data, errors.Wrap(scanner.Err(), "scan data file")
}
