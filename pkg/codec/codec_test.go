package codec

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/b64/pkg/alphabet"
)

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		Name   string
		Engine *Engine
		Input  string
		Output string
	}{
		{Name: "empty", Engine: Std, Input: "", Output: ""},
		{Name: "man", Engine: Std, Input: "Man", Output: "TWFu"},
		{Name: "one byte", Engine: Std, Input: "M", Output: "TQ=="},
		{Name: "two bytes", Engine: Std, Input: "Ma", Output: "TWE="},
		{Name: "light w", Engine: Std, Input: "light w", Output: "bGlnaHQgdw=="},
		{Name: "light wo", Engine: Std, Input: "light wo", Output: "bGlnaHQgd28="},
		{Name: "light wor", Engine: Std, Input: "light wor", Output: "bGlnaHQgd29y"},
		{Name: "raw one byte", Engine: RawStd, Input: "M", Output: "TQ"},
		{Name: "raw two bytes", Engine: RawStd, Input: "Ma", Output: "TWE"},
		{Name: "raw full group", Engine: RawStd, Input: "Man", Output: "TWFu"},
		{Name: "url high bits", Engine: URL, Input: "\xfb\xff\xbf", Output: "-_-_"},
		{Name: "std high bits", Engine: Std, Input: "\xfb\xff\xbf", Output: "+/+/"},
		{Name: "raw url", Engine: RawURL, Input: "\xfb\xff", Output: "-_8"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Output, test.Engine.Encode([]byte(test.Input)))

			decoded, err := test.Engine.Decode(test.Output)
			require.NoError(t, err)
			require.Equal(t, []byte(test.Input), decoded)
		})
	}
}

func TestPackageHelpers(t *testing.T) {
	require.Equal(t, "TWFu", Encode([]byte{0x4D, 0x61, 0x6E}))

	decoded, err := Decode("TWFu")
	require.NoError(t, err)
	require.Equal(t, []byte{0x4D, 0x61, 0x6E}, decoded)

	decoded, err = Decode("TQ==")
	require.NoError(t, err)
	require.Equal(t, []byte{0x4D}, decoded)
}

func TestRoundTrip(t *testing.T) {
	engines := map[string]*Engine{
		"std":     Std,
		"url":     URL,
		"raw-std": RawStd,
		"raw-url": RawURL,
		"lenient": New(alphabet.Standard, WithFillerBits(Lenient)),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			for n := 0; n <= 64; n++ {
				buf := make([]byte, n)
				_, err := rand.Read(buf)
				require.NoError(t, err)

				encoded := engine.Encode(buf)
				decoded, err := engine.Decode(encoded)
				require.NoError(t, err, "input %x", buf)
				require.Equal(t, buf, decoded)
			}
		})
	}
}

func TestAllByteValues(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}

	encoded := Std.Encode(buf)
	decoded, err := Std.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, buf, decoded)
}

func TestLengthLaw(t *testing.T) {
	for n := 0; n <= 30; n++ {
		src := make([]byte, n)

		padded := Std.Encode(src)
		require.Len(t, padded, (n+2)/3*4)
		require.Equal(t, len(padded), Std.EncodedLen(n))
		require.Zero(t, len(padded)%4)

		raw := RawStd.Encode(src)
		require.Len(t, raw, (n*8+5)/6)
		require.Equal(t, len(raw), RawStd.EncodedLen(n))

		decoded, err := Std.Decode(padded)
		require.NoError(t, err)
		require.LessOrEqual(t, len(decoded), Std.DecodedLen(len(padded)))

		decoded, err = RawStd.Decode(raw)
		require.NoError(t, err)
		require.Equal(t, n, RawStd.DecodedLen(len(raw)))
		require.Len(t, decoded, n)
	}
}

func TestAlphabetClosure(t *testing.T) {
	buf := make([]byte, 1000)
	_, err := rand.Read(buf)
	require.NoError(t, err)

	for _, n := range []int{1, 2, 3, 998, 999, 1000} {
		encoded := Std.Encode(buf[:n])
		for i := 0; i < len(encoded); i++ {
			c := encoded[i]
			if alphabet.Standard.IsPadding(c) {
				continue
			}
			_, err := alphabet.Standard.IndexOf(c)
			require.NoError(t, err, "symbol %q at %d", c, i)
		}
		require.NotContains(t, RawStd.Encode(buf[:n]), "=")
	}
}

func TestAppendEncode(t *testing.T) {
	dst := []byte("key=")
	dst = Std.AppendEncode(dst, []byte("Man"))
	require.Equal(t, "key=TWFu", string(dst))

	require.Equal(t, "prefix", string(Std.AppendEncode([]byte("prefix"), nil)))
}

func TestCustomAlphabet(t *testing.T) {
	// bcrypt ordering with '.' moved in as padding replacement.
	a, err := alphabet.New("./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", '$')
	require.NoError(t, err)
	engine := New(a)

	encoded := engine.Encode([]byte{0x00, 0x00})
	require.Equal(t, "...$", encoded)

	decoded, err := engine.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00}, decoded)

	_, err = engine.Decode("..==")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestPolicies(t *testing.T) {
	require.Equal(t, Padded, Std.Padding())
	require.Equal(t, Strict, Std.FillerBits())
	require.Equal(t, Unpadded, RawURL.Padding())
	require.True(t, RawURL.Alphabet().Equal(alphabet.URLSafe))

	require.Equal(t, "padded", Padded.String())
	require.Equal(t, "unpadded", Unpadded.String())
	require.Equal(t, "strict", Strict.String())
	require.Equal(t, "lenient", Lenient.String())
}

func TestEngineIsSafeForConcurrentUse(t *testing.T) {
	input := []byte(strings.Repeat("Many hands make light work. ", 32))
	want := Std.Encode(input)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if Std.Encode(input) != want {
					t.Error("unexpected encoding")
					return
				}
				if _, err := Std.Decode(want); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
