package widget

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenClipboard struct{}

func (brokenClipboard) WriteText(string) error { return errors.New("no display") }

// racingClipboard regenerates the widget while the copy is in flight.
type racingClipboard struct {
	w       *Widget
	written string
}

func (c *racingClipboard) WriteText(text string) error {
	c.written = text
	_, err := c.w.Regenerate()
	return err
}

func newTestWidget(t *testing.T, cfg Config) *Widget {
	t.Helper()
	w, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(w.Close)
	return w
}

func assertConsistent(t *testing.T, s State) {
	t.Helper()
	assert.Equal(t, crypto.Score(s.Password), s.Strength, "strength of %q is stale", s.Password)
	assert.Equal(t, crypto.Classify(s.Strength), s.Rating)
}

func TestNew_InitialState(t *testing.T) {
	w := newTestWidget(t, Config{})
	s := w.State()

	assert.Equal(t, crypto.DefaultLength, s.Length)
	assert.Equal(t, crypto.Selection{Lowercase: true, Digits: true}, s.Selection)
	assert.Len(t, s.Password, crypto.DefaultLength)
	assert.False(t, s.Copied)
	assert.Equal(t, crypto.MaxLength, w.MaxLength())
	assertConsistent(t, s)

	alphabet := crypto.BuildAlphabet(s.Selection)
	for _, ch := range s.Password {
		assert.True(t, strings.ContainsRune(alphabet, ch), "unexpected %q", ch)
	}
}

func TestToggleClass_Regenerates(t *testing.T) {
	w := newTestWidget(t, Config{Source: crypto.NewMathSource(3, 4)})
	before := w.State()

	s, err := w.ToggleClass(crypto.Symbols)
	require.NoError(t, err)

	assert.True(t, s.Selection.Symbols)
	assert.Greater(t, s.Revision, before.Revision)
	assert.Len(t, s.Password, before.Length)
	assertConsistent(t, s)
	assert.Equal(t, s, w.State())
}

func TestToggleClass_NoClassSelected(t *testing.T) {
	w := newTestWidget(t, Config{})

	_, err := w.ToggleClass(crypto.Lowercase)
	require.NoError(t, err)
	kept := w.State()

	s, err := w.ToggleClass(crypto.Digits)
	assert.ErrorIs(t, err, crypto.ErrNoClassSelected)
	assert.True(t, s.Selection.Empty())
	assert.Equal(t, kept.Password, s.Password)
	assert.Equal(t, kept.Strength, s.Strength)

	_, err = w.Regenerate()
	assert.ErrorIs(t, err, crypto.ErrNoClassSelected)
	assert.Equal(t, kept.Password, w.State().Password)

	s, err = w.ToggleClass(crypto.Uppercase)
	require.NoError(t, err)
	for _, ch := range s.Password {
		assert.True(t, ch >= 'A' && ch <= 'Z', "unexpected %q", ch)
	}
	assertConsistent(t, s)
}

func TestSetLength(t *testing.T) {
	w := newTestWidget(t, Config{})

	s, err := w.SetLength(40)
	require.NoError(t, err)
	assert.Equal(t, 40, s.Length)
	assert.Len(t, s.Password, 40)
	assertConsistent(t, s)

	kept := s.Password
	s, err = w.SetLength(0)
	assert.ErrorIs(t, err, crypto.ErrInvalidLength)
	assert.Equal(t, 0, s.Length)
	assert.Equal(t, kept, s.Password)

	s, err = w.SetLength(crypto.MaxLength + 1)
	assert.ErrorIs(t, err, crypto.ErrInvalidLength)
	assert.Equal(t, kept, s.Password)

	s, err = w.SetLength(crypto.MaxLength)
	require.NoError(t, err)
	assert.Len(t, s.Password, crypto.MaxLength)
}

func TestRegenerate_ChangesPassword(t *testing.T) {
	w := newTestWidget(t, Config{})
	_, err := w.SetLength(32)
	require.NoError(t, err)

	first := w.State().Password
	s, err := w.Regenerate()
	require.NoError(t, err)
	assert.NotEqual(t, first, s.Password)
	assertConsistent(t, s)
}

func TestCopy_SetsAndResetsIndicator(t *testing.T) {
	mem := &clipboard.Memory{}
	w := newTestWidget(t, Config{Clipboard: mem, CopiedResetDelay: 30 * time.Millisecond})

	s, err := w.Copy()
	require.NoError(t, err)
	assert.True(t, s.Copied)

	text, writes := mem.Text()
	assert.Equal(t, s.Password, text)
	assert.Equal(t, 1, writes)

	assert.Eventually(t, func() bool { return !w.State().Copied }, time.Second, 5*time.Millisecond)
}

func TestCopy_LaterCopyRestartsDelay(t *testing.T) {
	delay := 200 * time.Millisecond
	w := newTestWidget(t, Config{Clipboard: &clipboard.Memory{}, CopiedResetDelay: delay})

	_, err := w.Copy()
	require.NoError(t, err)
	time.Sleep(delay / 2)
	_, err = w.Copy()
	require.NoError(t, err)

	// The first reset would have fired by now.
	time.Sleep(delay/2 + delay/4)
	assert.True(t, w.State().Copied)

	assert.Eventually(t, func() bool { return !w.State().Copied }, time.Second, 5*time.Millisecond)
}

func TestCopy_RegenerateKeepsIndicator(t *testing.T) {
	w := newTestWidget(t, Config{Clipboard: &clipboard.Memory{}, CopiedResetDelay: time.Minute})

	_, err := w.Copy()
	require.NoError(t, err)
	s, err := w.Regenerate()
	require.NoError(t, err)
	assert.True(t, s.Copied)
}

func TestCopy_ClipboardError(t *testing.T) {
	w := newTestWidget(t, Config{Clipboard: brokenClipboard{}})

	s, err := w.Copy()
	assert.Error(t, err)
	assert.False(t, s.Copied)
}

func TestCopy_PasswordReplacedDuringWrite(t *testing.T) {
	clip := &racingClipboard{}
	w := newTestWidget(t, Config{Clipboard: clip, CopiedResetDelay: time.Minute})
	clip.w = w
	_, err := w.SetLength(32)
	require.NoError(t, err)

	s, err := w.Copy()
	require.NoError(t, err)
	assert.False(t, s.Copied)
	assert.NotEqual(t, clip.written, s.Password)
	assert.Equal(t, s, w.State())
}

func TestClose(t *testing.T) {
	w, err := New(Config{Clipboard: &clipboard.Memory{}, CopiedResetDelay: time.Hour})
	require.NoError(t, err)

	_, err = w.Copy()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		w.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not cancel the pending reset")
	}

	w.Close()

	_, err = w.Regenerate()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = w.Copy()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = w.SetLength(12)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestConcurrentUse(t *testing.T) {
	w := newTestWidget(t, Config{Clipboard: &clipboard.Memory{}, CopiedResetDelay: time.Millisecond})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				switch (i + j) % 4 {
				case 0:
					_, _ = w.Regenerate()
				case 1:
					_, _ = w.SetLength(1 + j)
				case 2:
					_, _ = w.ToggleClass(crypto.Classes[j%len(crypto.Classes)])
				case 3:
					_, _ = w.Copy()
				}
				assertConsistent(t, w.State())
			}
		}(i)
	}
	wg.Wait()
}
