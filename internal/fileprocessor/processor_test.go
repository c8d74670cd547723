package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "code.bin", []byte{
		0x3e, 0x01, // mvi a, $01
		0x87, // add a
		0xa0, // ana b
		0xc9, // ret
	})
	output := filepath.Join(dir, "code.asm")

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{BaseAddress: 0x0100},
	}
	disasmOptions := options.Disassembler{}

	logger := log.NewTestLogger(t)
	assert.NoError(t, ProcessFile(context.Background(), logger, opts, disasmOptions))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	listing := string(data)
	assert.Contains(t, listing, ".org $0100")
	assert.Contains(t, listing, "  mvi a, $01\n")
	assert.Contains(t, listing, "  add a\n")
	assert.Contains(t, listing, "  ana b\n")
	assert.Contains(t, listing, "  .byte $c9\n")
}

func TestProcessFile_Errors(t *testing.T) {
	dir := t.TempDir()
	logger := log.NewTestLogger(t)

	t.Run("missing input", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: filepath.Join(dir, "missing.bin")},
		}
		err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
		assert.ErrorContains(t, err, "loading code")
	})

	t.Run("exceeds address space", func(t *testing.T) {
		input := writeTestFile(t, dir, "large.bin", make([]byte, 0x200))
		opts := options.Program{
			Parameters: options.Parameters{Input: input, Output: filepath.Join(dir, "large.asm")},
			Flags:      options.Flags{BaseAddress: 0xff00},
		}
		err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
		assert.ErrorContains(t, err, "exceeds the address space")
	})

	t.Run("cancelled", func(t *testing.T) {
		input := writeTestFile(t, dir, "cancel.bin", []byte{0x41})
		opts := options.Program{
			Parameters: options.Parameters{Input: input, Output: filepath.Join(dir, "cancel.asm")},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ProcessFile(ctx, logger, opts, options.NewDisassembler())
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestPrintOpcodes(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.NoError(t, PrintOpcodes(buf))

	output := buf.String()
	assert.Contains(t, output, "0_ ")
	assert.Contains(t, output, "undefined")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.bin", []byte{0x00})
	writeTestFile(t, dir, "b.bin", []byte{0x00})
	writeTestFile(t, dir, "c.txt", []byte{0x00})

	opts := &options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.bin")},
	}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(files))

	opts = &options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.com")},
	}
	files, err = GetFilesToProcess(opts)
	assert.True(t, errors.Is(err, ErrNoFilesMatched))
	assert.Equal(t, 0, len(files))

	opts = &options.Program{
		Parameters: options.Parameters{Input: "single.bin"},
	}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(files))
	assert.Equal(t, "single.bin", files[0])
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"code.bin", "code.asm"},
		{"dir/rom.com", "dir/rom.asm"},
		{"noext", "noext.asm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputFilename(tt.input))
		})
	}
}
