package archive

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/gridsynth/pkg/errors"
	"github.com/matzehuels/gridsynth/pkg/synth"
)

// =============================================================================
// Archive Serialization API
// =============================================================================

// Marshal converts an engine's full state to JSON bytes.
func Marshal(e *synth.Engine) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(e, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a fully populated engine.
func Unmarshal(data []byte, opts ...synth.Option) (*synth.Engine, error) {
	return Read(bytes.NewReader(data), opts...)
}

// Write encodes an engine as an archive document to w.
func Write(e *synth.Engine, w io.Writer) error {
	doc := FromEngine(e)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "encode archive")
	}
	return nil
}

// Read decodes an archive document from r and constructs the engine.
// Structural problems fail with MALFORMED_ARCHIVE; the whole operation is
// atomic.
func Read(r io.Reader, opts ...synth.Option) (*synth.Engine, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedArchive, err, "decode archive")
	}
	return doc.Engine(opts...)
}

// WriteFile writes an engine's archive to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(e *synth.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "create %s", path)
	}
	defer f.Close()
	return Write(e, f)
}

// ReadFile reads an archive file and constructs the engine.
func ReadFile(path string, opts ...synth.Option) (*synth.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, opts...)
}

// MarshalDocument encodes an already-built document as indented JSON.
// Most callers want [Marshal]; this exists for tooling that edits documents
// without constructing an engine.
func MarshalDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "encode archive")
	}
	return buf.Bytes(), nil
}

// UnmarshalDocument decodes JSON bytes into a document without constructing
// an engine. The document is not validated; call [Document.Engine] for
// full validation.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeMalformedArchive, err, "decode archive")
	}
	return doc, nil
}
