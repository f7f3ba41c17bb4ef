package rules

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/recid/codec"
)

// Rule maps an identifier to a value.
type Rule struct {
	// ID is classified with recid.Classifier. A leading '*' marks a wildcard.
	ID string `json:"id" yaml:"id"`
	// Value is stored in the index.
	Value string `json:"value" yaml:"value"`
	// Limit is an optional field mask, see recid.ParseFieldMask.
	Limit string `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// Document is the JSON and YAML document shape.
type Document struct {
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Format is a document encoding.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatJSONLines
	FormatYAML
)

// Compression is a blob compression.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZSTD
	CompressionLZ4
)

// Detect returns the format and compression selected by a blob name.
func Detect(name string) (Format, Compression) {
	lower := strings.ToLower(name)
	comp := CompressionNone
	switch {
	case strings.HasSuffix(lower, ".zst"):
		comp = CompressionZSTD
		lower = strings.TrimSuffix(lower, ".zst")
	case strings.HasSuffix(lower, ".lz4"):
		comp = CompressionLZ4
		lower = strings.TrimSuffix(lower, ".lz4")
	}

	switch path.Ext(lower) {
	case ".json":
		return FormatJSON, comp
	case ".jsonl", ".ndjson":
		return FormatJSONLines, comp
	case ".yaml", ".yml":
		return FormatYAML, comp
	default:
		return FormatUnknown, comp
	}
}

// Supported reports whether name has a known document extension.
func Supported(name string) bool {
	f, _ := Detect(name)
	return f != FormatUnknown
}

var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

func decompress(data []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return data, nil
	}
}

// Decode decodes the rules of the blob called name. JSON documents are
// decoded with c; a nil c uses codec.Default.
func Decode(name string, data []byte, c codec.Codec) ([]Rule, error) {
	format, comp := Detect(name)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	if c == nil {
		c = codec.Default
	}

	data, err := decompress(data, comp)
	if err != nil {
		return nil, &DecodeError{Source: name, Err: err}
	}

	switch format {
	case FormatJSONLines:
		return decodeLines(name, data, c)
	case FormatYAML:
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &DecodeError{Source: name, Err: err}
		}
		return doc.Rules, nil
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		var doc Document
		if err := c.Unmarshal(data, &doc); err != nil {
			return nil, &DecodeError{Source: name, Err: err}
		}
		return doc.Rules, nil
	}
}

const maxLineSize = 1 << 20

func decodeLines(name string, data []byte, c codec.Codec) ([]Rule, error) {
	var rules []Rule

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for line := 1; sc.Scan(); line++ {
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		var r Rule
		if err := c.Unmarshal(text, &r); err != nil {
			return nil, &DecodeError{Source: name, Line: line, Err: err}
		}
		rules = append(rules, r)
	}
	if err := sc.Err(); err != nil {
		return nil, &DecodeError{Source: name, Err: err}
	}
	return rules, nil
}
