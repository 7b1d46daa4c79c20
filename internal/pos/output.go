package pos

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReceiptDestination receives a finished receipt under a generated file name.
type ReceiptDestination interface {
	// WriteReceipt delivers the receipt text and returns the location it was
	// written to, or "" for ephemeral destinations like the console.
	WriteReceipt(name string, text []byte) (string, error)
}

// ConsoleOutput writes receipts to a terminal writer, framed by the receipt
// banner.
type ConsoleOutput struct {
	Writer io.Writer
}

func (c *ConsoleOutput) WriteReceipt(name string, text []byte) (string, error) {
	output := fmt.Sprintf("\n---------- RECEIPT ----------\n%s-----------------------------\n", string(text))
	if _, err := io.WriteString(c.Writer, output); err != nil {
		return "", fmt.Errorf("failed to write receipt to console: %w", err)
	}
	return "", nil
}

// FileOutput persists receipts as text files under a base directory.
type FileOutput struct {
	basePath string
}

func NewFileOutput(basePath string) *FileOutput {
	return &FileOutput{basePath: basePath}
}

// Path returns where a receipt with the given name would be written.
func (f *FileOutput) Path(name string) string {
	return filepath.Join(f.basePath, name)
}

func (f *FileOutput) WriteReceipt(name string, text []byte) (string, error) {
	filename := f.Path(name)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file %s: %w", filename, err)
	}
	defer file.Close()

	if _, err := file.Write(text); err != nil {
		return "", fmt.Errorf("failed to write receipt file %s: %w", filename, err)
	}
	return filename, nil
}
