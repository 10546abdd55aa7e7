package rpc

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/user/githookbot/internal/relay"
	"github.com/user/githookbot/internal/rpc/hookpb"
	"github.com/user/githookbot/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(false, "")
	os.Exit(m.Run())
}

type sentMessage struct {
	dest relay.Destination
	text string
}

type fakeNotifier struct {
	err  error
	sent []sentMessage
}

func (f *fakeNotifier) Send(ctx context.Context, dest relay.Destination, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{dest: dest, text: text})
	return nil
}

func TestSendMessageDelivers(t *testing.T) {
	notifier := &fakeNotifier{}
	srv := NewServer(relay.NewService(notifier), time.Second)

	ack, err := srv.SendMessage(context.Background(), &hookpb.Message{
		Author:   "bob",
		Comment:  "lgtm",
		RepoName: "svc",
		ChatId:   777,
		ThreadId: 0,
	})
	require.NoError(t, err)
	require.NotNil(t, ack)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, relay.Destination{ChatID: 777, ThreadID: 0}, notifier.sent[0].dest)
	assert.Equal(t, "bob\nlgtm\nsvc", notifier.sent[0].text)
}

func TestSendMessageAppliesThread(t *testing.T) {
	notifier := &fakeNotifier{}
	srv := NewServer(relay.NewService(notifier), time.Second)

	_, err := srv.SendMessage(context.Background(), &hookpb.Message{
		Author: "bob", Comment: "c", RepoName: "r", ChatId: 1, ThreadId: 42,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, int64(42), notifier.sent[0].dest.ThreadID)
}

func TestSendMessageAcknowledgesDeliveryFailure(t *testing.T) {
	notifier := &fakeNotifier{err: &relay.DeliveryError{Description: "chat not found", Rejected: true}}
	srv := NewServer(relay.NewService(notifier), time.Second)

	ack, err := srv.SendMessage(context.Background(), &hookpb.Message{
		Author: "bob", Comment: "c", RepoName: "r", ChatId: 1,
	})

	// Best-effort contract: the caller always gets a well-formed ack.
	require.NoError(t, err)
	require.NotNil(t, ack)
	assert.Empty(t, notifier.sent)
}

func TestSendMessageWithoutDeliveryService(t *testing.T) {
	srv := NewServer(nil, time.Second)

	ack, err := srv.SendMessage(context.Background(), &hookpb.Message{Author: "bob", ChatId: 1})
	require.NotNil(t, ack)
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestSendMessageIgnoresForwardCompatFields(t *testing.T) {
	notifier := &fakeNotifier{}
	srv := NewServer(relay.NewService(notifier), time.Second)

	_, err := srv.SendMessage(context.Background(), &hookpb.Message{
		EventType: "push",
		Author:    "bob",
		AuthorUrl: "https://github.com/bob",
		Comment:   "lgtm",
		RepoName:  "svc",
		RepoUrl:   "https://github.com/bob/svc",
		ChatId:    777,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	// author_url and repo_url are accepted but not rendered on this path.
	assert.Equal(t, "bob\nlgtm\nsvc", notifier.sent[0].text)
}
