package reporterror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileError(t *testing.T) {
	err := fmt.Errorf("load: %w", &FileError{Op: "open", Path: "region.csv", Err: fs.ErrNotExist})

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	var fe *FileError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "region.csv", fe.Path)
	assert.Equal(t, "load: open region.csv: file does not exist", err.Error())
}

func TestParseError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with line and field",
			err:  &ParseError{File: "nrw.csv", Line: 3, Field: "number", Value: "abc", Err: errors.New("invalid count")},
			want: "parse nrw.csv line 3: field number='abc': invalid count",
		},
		{
			name: "file level",
			err:  &ParseError{File: "nrw.csv", Err: errors.New("empty file")},
			want: "parse nrw.csv: empty file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestMissingColumnError_Message(t *testing.T) {
	err := &MissingColumnError{File: "region.csv", Column: "number", Header: []string{"region", "count"}}
	assert.Equal(t, "parse region.csv: missing column 'number' (header: region,count)", err.Error())
}

func TestEmptyDatasetError_IsSentinel(t *testing.T) {
	err := errors.Join(&EmptyDatasetError{Dataset: "year_series"}, errors.New("other"))
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	render := &RenderError{Chart: "tortendiagramm", Err: ErrEmptyDataset}
	assert.True(t, errors.Is(render, ErrEmptyDataset))
	assert.Equal(t, "render tortendiagramm: dataset has no rows", render.Error())
}
