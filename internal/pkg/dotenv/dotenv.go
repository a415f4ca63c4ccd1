package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultFile = ".env"

var portFlag = flag.String("port", "", "Server port (overrides PORT environment variable)")

// ErrNoFile: файла нет, конфигурация берется только из окружения.
var ErrNoFile = errors.New("no .env file")

// Load подгружает переменные из файлов; уже заданные в окружении не перезаписываются.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultFile}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoFile, path)
		}
	}

	err := godotenv.Load(paths...)
	if err != nil {
		return fmt.Errorf("load %v: %w", paths, err)
	}
	return nil
}

// ApplyFlags переносит флаги командной строки в окружение до config.Load.
func ApplyFlags() error {
	if !flag.Parsed() {
		flag.Parse()
	}

	if *portFlag != "" {
		err := os.Setenv("PORT", *portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
