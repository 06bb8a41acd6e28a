package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/screen"
)

type verdictMsg struct {
	key string
}

// stubScreen records the lifecycle calls and messages it receives.
type stubScreen struct {
	title    string
	initRan  bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushRunsInit(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	board := &stubScreen{title: "board"}
	r.Push(board)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "board", r.Active().Title())
	assert.True(t, board.initRan)
}

func TestPopRevealsPrevious(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Push(&stubScreen{title: "board"})

	r.Update(PopScreenMsg{})

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
	assert.Empty(t, home.received, "plain pop carries no message")
}

func TestPopDeliversResultToRevealedScreen(t *testing.T) {
	board := &stubScreen{title: "board"}
	r := New(board)
	question := &stubScreen{title: "question"}
	r.Push(question)

	r.Update(PopScreenMsg{Result: verdictMsg{key: "geo:300"}})

	assert.Equal(t, "board", r.Active().Title())
	require.Len(t, board.received, 1)
	assert.Equal(t, verdictMsg{key: "geo:300"}, board.received[0])
	assert.Empty(t, question.received, "the popped screen must not see the result")
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(PopScreenMsg{Result: verdictMsg{}})
	assert.Equal(t, 1, r.Depth())
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "stats"})

	next := &stubScreen{title: "account"}
	r.Update(ReplaceScreenMsg{Screen: next})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "account", r.Active().Title())
	assert.True(t, next.initRan)
}

func TestUpdateReachesOnlyActiveScreen(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	board := &stubScreen{title: "board"}
	r.Push(board)

	r.Update(verdictMsg{key: "sci:100"})

	require.Len(t, board.received, 1)
	assert.Empty(t, home.received)
}
