package handler

import (
	"testing"
	"time"

	"habitpet/internal/domain"
	"habitpet/internal/locales"
	"habitpet/internal/service"
	"habitpet/internal/testutil"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

var testNow = time.Date(2025, 9, 16, 9, 0, 0, 0, time.UTC)

// fakeContext records what handlers send; unused Context methods panic
type fakeContext struct {
	tele.Context

	user     *tele.User
	text     string
	callback *tele.Callback
	editErr  error

	sent      []string
	edited    []string
	markups   []*tele.ReplyMarkup
	responded int
}

func (f *fakeContext) Sender() *tele.User       { return f.user }
func (f *fakeContext) Text() string             { return f.text }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what.(string))
	f.markups = append(f.markups, markupOf(opts))
	return nil
}

func (f *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.editErr != nil {
		return f.editErr
	}
	f.edited = append(f.edited, what.(string))
	f.markups = append(f.markups, markupOf(opts))
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responded++
	return nil
}

// last returns the most recent message text, edited or sent
func (f *fakeContext) last() string {
	if len(f.edited) > 0 {
		return f.edited[len(f.edited)-1]
	}
	if len(f.sent) > 0 {
		return f.sent[len(f.sent)-1]
	}
	return ""
}

func markupOf(opts []interface{}) *tele.ReplyMarkup {
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			return m
		}
	}
	return nil
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	l, err := locales.Load()
	require.NoError(t, err)

	onboarding := service.NewOnboardingService(nil, testutil.NewTestLogger())
	onboarding.SetClock(testutil.FixedClock(testNow))

	h := NewHandler(nil, onboarding, l, testutil.NewTestLogger())
	h.now = testutil.FixedClock(testNow)
	return h
}

func message(userID int64, text string) *fakeContext {
	return &fakeContext{user: &tele.User{ID: userID, Username: "jane"}, text: text}
}

func press(userID int64, unique, data string) *fakeContext {
	return &fakeContext{
		user:     &tele.User{ID: userID},
		callback: &tele.Callback{ID: "cb", Unique: unique, Data: data},
	}
}

func testLocales(t *testing.T) *locales.Locales {
	t.Helper()
	l, err := locales.Load()
	require.NoError(t, err)
	return l
}

// stateAt builds a state on the screen at index by skipping forward
func stateAt(t *testing.T, index int) domain.State {
	t.Helper()
	s := domain.NewState("sid", testNow)
	for s.Index < index {
		next, err := s.Apply(domain.Skip{})
		require.NoError(t, err)
		s = next
	}
	return s
}

func mustApply(t *testing.T, s domain.State, actions ...domain.Action) domain.State {
	t.Helper()
	for _, a := range actions {
		next, err := s.Apply(a)
		require.NoError(t, err, "%T", a)
		s = next
	}
	return s
}
