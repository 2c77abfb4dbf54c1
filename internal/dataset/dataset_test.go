package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

func TestParseJSONPreservesOrder(t *testing.T) {
	v, err := ParseJSON(`{"zeta": 1, "alpha": [true, null, "x"], "mid": {"b": 2.50, "a": 1e3}}`)
	require.NoError(t, err)

	assert.Equal(t, Object, v.Kind())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Keys())

	alpha, ok := v.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 3, alpha.Len())
	assert.Equal(t, Null, alpha.Items()[1].Kind())

	mid, _ := v.Get("mid")
	b, _ := mid.Get("b")
	assert.Equal(t, "2.50", b.Text())
}

func TestParseJSONDuplicateKeys(t *testing.T) {
	v, err := ParseJSON(`{"a": 1, "b": 2, "a": 3}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v.Keys())
	a, _ := v.Get("a")
	assert.Equal(t, "3", a.Text())
}

func TestParseJSONErrors(t *testing.T) {
	for _, input := range []string{"", "{", `{"a":}`, `[1, 2,]`, `{} x`} {
		_, err := ParseJSON(input)
		var parseErr *toolerr.ParseError
		require.True(t, errors.As(err, &parseErr), "input %q", input)
		assert.Equal(t, "JSON", parseErr.Subject)
		assert.Contains(t, parseErr.Detail, "offset")
	}
}

func TestRenderJSON(t *testing.T) {
	v, err := ParseJSON(`{"name":"café <b>&","list":[1,{"x":null}],"empty":{},"none":[]}`)
	require.NoError(t, err)

	want := `{
  "name": "café <b>&",
  "list": [
    1,
    {
      "x": null
    }
  ],
  "empty": {},
  "none": []
}`
	assert.Equal(t, want, RenderJSON(v))
	assert.Equal(t, `{"name":"café <b>&","list":[1,{"x":null}],"empty":{},"none":[]}`, CompactJSON(v))
}

func TestRenderJSONFixedPoint(t *testing.T) {
	inputs := []string{
		`{"a":[1,2,{"b":"line\nbreak \"q\""}],"c":-0.5e10}`,
		`"just a string"`,
		`[]`,
		`  true `,
	}
	for _, in := range inputs {
		v, err := ParseJSON(in)
		require.NoError(t, err)
		once := RenderJSON(v)

		again, err := ParseJSON(once)
		require.NoError(t, err)
		assert.Equal(t, once, RenderJSON(again))
	}
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "array", Array.String())
	assert.Equal(t, "boolean", Bool.String())
	assert.Equal(t, "null", Null.String())
}

func TestParseCSV(t *testing.T) {
	v, err := ParseCSV("name, city\nAda, London\n\n\"Smith, J\",\"New York\"\nbroken\n")
	require.NoError(t, err)

	require.Equal(t, 2, v.Len())
	first := v.Items()[0]
	assert.Equal(t, []string{"name", "city"}, first.Keys())
	city, _ := first.Get("city")
	assert.Equal(t, "London", city.Text())

	second := v.Items()[1]
	name, _ := second.Get("name")
	assert.Equal(t, "Smith, J", name.Text())
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseCSV("  \n ")
	var formatErr *toolerr.FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestParseCSVHeaderOnly(t *testing.T) {
	v, err := ParseCSV("a,b")
	require.NoError(t, err)
	assert.Equal(t, Array, v.Kind())
	assert.Zero(t, v.Len())
	assert.Equal(t, "[]", RenderJSON(v))
}

func TestRenderCSV(t *testing.T) {
	v, err := ParseJSON(`[{"a":"1","b":"2"}]`)
	require.NoError(t, err)
	out, err := RenderCSV(v)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2", out)
}

func TestRenderCSVCells(t *testing.T) {
	v, err := ParseJSON(`[
		{"id": 1, "ok": true, "note": "x, y", "tags": ["a", "b"], "gone": null},
		{"id": 2.0, "ok": false}
	]`)
	require.NoError(t, err)

	out, err := RenderCSV(v)
	require.NoError(t, err)
	assert.Equal(t, "id,ok,note,tags,gone\n1,true,\"x, y\",\"[\"\"a\"\",\"\"b\"\"]\",\n2.0,false,,,", out)
}

func TestRenderCSVRejectsNonRecords(t *testing.T) {
	for _, in := range []string{`{"a":1}`, `[1,2]`, `[{"a":1}, "x"]`, `"s"`} {
		v, err := ParseJSON(in)
		require.NoError(t, err)
		_, err = RenderCSV(v)
		assert.ErrorIs(t, err, ErrNotRecords, "input %s", in)
	}

	empty, _ := ParseJSON(`[]`)
	out, err := RenderCSV(empty)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCSVRoundTrip(t *testing.T) {
	in := "b,a,c\n1,2,3\nx,\"y, z\",w"
	v, err := ParseCSV(in)
	require.NoError(t, err)

	asJSON, err := ParseJSON(RenderJSON(v))
	require.NoError(t, err)

	out, err := RenderCSV(asJSON)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseCSVRejectsBrokenQuotes(t *testing.T) {
	for _, in := range []string{
		"name,note\n\"Bob,hello\nAlice,hi\nCarl,yo",
		"name,note\nBo\"b,hi",
	} {
		_, err := ParseCSV(in)
		var parseErr *toolerr.ParseError
		require.True(t, errors.As(err, &parseErr), "input %q", in)
		assert.Equal(t, "CSV", parseErr.Subject)
	}
}

func TestCSVRoundTripSingleEmptyColumn(t *testing.T) {
	v, err := ParseCSV("note\nfirst\n\"\"")
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())

	out, err := RenderCSV(v)
	require.NoError(t, err)
	assert.Equal(t, "note\nfirst\n\"\"", out)

	again, err := ParseCSV(out)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Len())
}
