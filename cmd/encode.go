package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mabhi256/marshal48/internal/marshal"
	"github.com/mabhi256/marshal48/internal/marshal/host"
	"github.com/mabhi256/marshal48/utils"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file.json] [out.bin]",
	Short: "Encode a JSON fixture into a Marshal 4.8 stream",
	Long: `Encode reads a JSON document describing nils/bools/integers/strings/
arrays/objects and writes the equivalent Marshal 4.8 stream, for building
test fixtures without a Ruby runtime. JSON objects become Hash values
keyed by String (not Symbol); there is no JSON notation for a host
object's dump/marshal_dump hooks, so this path never produces
UserDefined or UserMarshal values.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".json"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer in.Close()

		data, err := decodeJSONOrdered(in)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		out, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("create %s: %w", args[1], err)
		}
		defer out.Close()

		if err := marshal.EncodeFromHost(out, data); err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		fmt.Printf("wrote %s\n", args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

// decodeJSONOrdered parses r as JSON into the `any` shapes FromHost
// understands, using json.Decoder's token stream rather than Unmarshal
// into map[string]any so object key order survives the round trip, since
// Hash key order is observable on re-encode.
func decodeJSONOrdered(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return nil, fmt.Errorf("non-integer number %q: %w", t.String(), err)
		}
		return n, nil
	case string, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (host.OrderedMap, error) {
	out := host.OrderedMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key: want string, got %T", keyTok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, host.Pair{Key: key, Val: val})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return out, nil
}

func decodeJSONArray(dec *json.Decoder) ([]any, error) {
	out := []any{}
	for dec.More() {
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return out, nil
}
