package date

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack"
	"gopkg.in/yaml.v2"
)

type settlement struct {
	Trade  Date `json:"trade" yaml:"trade" msgpack:"trade" csv:"trade"`
	Settle Date `json:"settle" yaml:"settle" msgpack:"settle" csv:"settle"`
}

func TestJSON(t *testing.T) {
	t.Parallel()
	in := settlement{Trade: MustNew(2020, 10, 1), Settle: MustNew(2020, 10, 5)}
	buf, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"trade":"20201001","settle":"20201005"}`, string(buf))

	var out settlement
	require.NoError(t, json.Unmarshal(buf, &out))
	assert.Equal(t, in, out)

	require.NoError(t, json.Unmarshal([]byte(`{"trade":20201001,"settle":"2020-10-05"}`), &out))
	assert.Equal(t, in, out)

	require.NoError(t, json.Unmarshal([]byte(`{"trade":null,"settle":""}`), &out))
	assert.Equal(t, in.Trade, out.Trade)
	assert.True(t, out.Settle.IsZero())

	err = json.Unmarshal([]byte(`{"trade":"2020-02-30"}`), &out)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	err = json.Unmarshal([]byte(`{"trade":true}`), &out)
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestYAML(t *testing.T) {
	t.Parallel()
	want := settlement{Trade: MustNew(2020, 10, 1), Settle: MustNew(2020, 10, 5)}
	docs := []string{
		"trade: 20201001\nsettle: 20201005\n",
		"trade: 2020-10-01\nsettle: 2020-10-05\n",
		"trade: 2020.10.01\nsettle: '20201005'\n",
	}
	for _, doc := range docs {
		var got settlement
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got), doc)
		assert.Equal(t, want, got, doc)
	}

	buf, err := yaml.Marshal(want)
	require.NoError(t, err)
	var back settlement
	require.NoError(t, yaml.Unmarshal(buf, &back))
	assert.Equal(t, want, back)

	var bad settlement
	err = yaml.Unmarshal([]byte("trade: 20201301\n"), &bad)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestSQL(t *testing.T) {
	t.Parallel()
	want := MustNew(2020, 10, 1)
	sources := []interface{}{
		time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC),
		[]byte("2020-10-01"),
		"2020-10-01 00:00:00",
		int64(20201001),
	}
	for _, src := range sources {
		var d Date
		require.NoError(t, d.Scan(src), "%T", src)
		assert.Equal(t, want, d, "%T", src)
	}

	var d Date
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	assert.Error(t, d.Scan(3.5))
	assert.Error(t, d.Scan("2020-13-01"))

	v, err := want.Value()
	require.NoError(t, err)
	assert.Equal(t, "2020-10-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMsgpack(t *testing.T) {
	t.Parallel()
	in := settlement{Trade: MustNew(2020, 10, 1)}
	buf, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out settlement
	require.NoError(t, msgpack.Unmarshal(buf, &out))
	assert.Equal(t, in, out)
	assert.True(t, out.Settle.IsZero())

	buf, err = msgpack.Marshal(MustNew(2020, 2, 29))
	require.NoError(t, err)
	var n int64
	require.NoError(t, msgpack.Unmarshal(buf, &n))
	assert.Equal(t, int64(20200229), n)
}

func TestCSV(t *testing.T) {
	t.Parallel()
	rows := []*settlement{
		{Trade: MustNew(2020, 10, 1), Settle: MustNew(2020, 10, 5)},
		{Trade: MustNew(2020, 10, 2), Settle: MustNew(2020, 10, 6)},
	}
	out, err := gocsv.MarshalString(&rows)
	require.NoError(t, err)
	assert.Equal(t, "trade,settle\n20201001,20201005\n20201002,20201006\n", out)

	var back []*settlement
	require.NoError(t, gocsv.UnmarshalString("trade,settle\n2020-10-01,2020.10.05\n20201002,20201006\n", &back))
	assert.Equal(t, rows, back)
}

func TestText(t *testing.T) {
	t.Parallel()
	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2020.10.01")))
	assert.Equal(t, MustNew(2020, 10, 1), d)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "20201001", string(text))

	text, err = Date{}.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, text)
}
