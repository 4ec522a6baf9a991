////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/DanielRivasMD/horus"
	"github.com/ttacon/chalk"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// extensions rewritten by increment unless --all
var saveExtensions = []string{".js", ".page"}

////////////////////////////////////////////////////////////////////////////////////////////////////

// resolveSourceFiles expands directories into the files they contain, skipping hidden
// directories. files are filtered by exts, nil keeps all
func resolveSourceFiles(paths []string, exts []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if hasExtension(path, exts) {
				files = append(files, path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != path && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExtension(p, exts) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}
	}
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	if exts == nil {
		return true
	}
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// readSource reads path, or stdin when path is empty or "-"
func readSource(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// loadSource reads the document a command operates on, exiting on failure
func loadSource(path string, stdin io.Reader) string {
	text, err := readSource(path, stdin)
	if err != nil {
		horus.CheckErr(
			err,
			horus.WithMessage(path),
			horus.WithExitCode(2),
			horus.WithFormatter(func(he *horus.Herror) string {
				return "failed to read: " + chalk.Red.Color(he.Message)
			}),
		)
	}
	return text
}

// writeSource replaces the contents of path, preserving its permissions
func writeSource(path, text string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(text), mode)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func onelineErr(msg string) string {
	return chalk.Red.Color("error: ") + msg
}

// checkErr exits with a one-line message when err is set
func checkErr(err error, op, message string) {
	horus.CheckErr(
		err,
		horus.WithOp(op),
		horus.WithMessage(message),
		horus.WithExitCode(2),
		horus.WithFormatter(func(he *horus.Herror) string {
			return onelineErr(he.Message + ": " + err.Error())
		}),
	)
}

// diagnose logs to stderr when --verbose is set
func diagnose(format string, args ...any) {
	if !verbose {
		return
	}
	log.Print(chalk.Dim.TextStyle(fmt.Sprintf(format, args...)))
}

////////////////////////////////////////////////////////////////////////////////////////////////////
