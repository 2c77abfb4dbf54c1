package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

func TestHasherKnownDigests(t *testing.T) {
	tests := []struct {
		algorithm string
		input     string
		want      string
	}{
		{"md5", "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"sha1", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha512", "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"SHA256", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			h, err := NewHasher(tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.HashString(tt.input))
		})
	}
}

func TestHasherUnknownAlgorithm(t *testing.T) {
	_, err := NewHasher("crc32")
	var unsupported *toolerr.UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "crc32", unsupported.Value)
	assert.Equal(t, []string{"md5", "sha1", "sha256", "sha512"}, unsupported.Allowed)
}

func TestDefaultHasher(t *testing.T) {
	h := DefaultHasher()
	assert.Equal(t, SHA256, h.Algorithm())
	assert.Len(t, h.HashString("x"), 64)
}

func TestBase64(t *testing.T) {
	assert.Equal(t, "aGVsbG8gd29ybGQ=", Base64Encode("hello world"))

	decoded, err := Base64Decode("aGVsbG8gd29ybGQ=")
	require.NoError(t, err)
	assert.Equal(t, "hello world", decoded)

	decoded, err = Base64Decode(Base64Encode("héllo ✓"))
	require.NoError(t, err)
	assert.Equal(t, "héllo ✓", decoded)

	for _, bad := range []string{"aGVsbG8gd29ybGQ", "a$==", "/w=="} {
		_, err := Base64Decode(bad)
		var decodeErr *toolerr.DecodeError
		assert.True(t, errors.As(err, &decodeErr), "input %q", bad)
	}
}

func TestURLEncoding(t *testing.T) {
	assert.Equal(t, "hello%20world", URLEncode("hello world"))
	assert.Equal(t, "/path/to%3Fq%3D1%26b%3D2", URLEncode("/path/to?q=1&b=2"))
	assert.Equal(t, "caf%C3%A9", URLEncode("café"))
	assert.Equal(t, "a-b_c.d~e", URLEncode("a-b_c.d~e"))

	decoded, err := URLDecode("caf%C3%A9%20au+lait")
	require.NoError(t, err)
	assert.Equal(t, "café au+lait", decoded)

	_, err = URLDecode("100%zz")
	var decodeErr *toolerr.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestURLRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "a b&c=d/é", "100% sure"} {
		decoded, err := URLDecode(URLEncode(s))
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}
}
