package date

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack"
	"gopkg.in/yaml.v2"
)

var (
	_ encoding.TextMarshaler   = Date{}
	_ encoding.TextUnmarshaler = (*Date)(nil)
	_ json.Unmarshaler         = (*Date)(nil)
	_ yaml.Marshaler           = Date{}
	_ yaml.Unmarshaler         = (*Date)(nil)
	_ sql.Scanner              = (*Date)(nil)
	_ driver.Valuer            = Date{}
	_ msgpack.CustomEncoder    = Date{}
	_ msgpack.CustomDecoder    = (*Date)(nil)
)

// MarshalText encodes d as YYYYMMDD, or nothing for the zero Date.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts the string forms Parse does. Empty text gives the
// zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalJSON accepts a date string or an 8 digit number.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		return d.UnmarshalText([]byte(text))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: json %s", ErrInvalidType, s)
	}
	v, err := FromInt(n)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// UnmarshalYAML accepts any scalar New accepts: 20201001, 2020-10-01,
// "2020.10.01" and timestamps.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == nil {
		*d = Date{}
		return nil
	}
	v, err := New(raw)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Scan reads DATE columns. Drivers hand these over as time.Time, as
// "YYYY-MM-DD[ hh:mm:ss]" text or as YYYYMMDD integers.
func (d *Date) Scan(src interface{}) error {
	var (
		v   Date
		err error
	)
	switch x := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case []byte:
		v, err = scanText(string(x))
	case string:
		v, err = scanText(x)
	case int64:
		v, err = FromInt(int(x))
	default:
		v, err = New(x)
	}
	if err != nil {
		return fmt.Errorf("date: scan %T: %w", src, err)
	}
	*d = v
	return nil
}

func scanText(s string) (Date, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	return Parse(s)
}

// Value stores d as YYYY-MM-DD, the zero Date as NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.ISO(), nil
}

// EncodeMsgpack writes d as the integer YYYYMMDD, 0 for the zero Date.
func (d Date) EncodeMsgpack(enc *msgpack.Encoder) error {
	if d.IsZero() {
		return enc.EncodeInt(0)
	}
	return enc.EncodeInt(int64(d.AsInt()))
}

func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	if n == 0 {
		*d = Date{}
		return nil
	}
	v, err := FromInt(int(n))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalCSV(s string) error {
	return d.UnmarshalText([]byte(s))
}
