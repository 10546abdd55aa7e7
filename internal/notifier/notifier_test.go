package notifier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/githookbot/internal/relay"
	"github.com/user/githookbot/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(false, "")
	os.Exit(m.Run())
}

const sendMessageOK = `{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":555,"type":"supergroup"},"text":"x"}}`

// newTestAPI builds a real bot client pointed at a local fake Telegram
// endpoint. getMe is answered so the constructor succeeds; sendMessage is
// handled by the test.
func newTestAPI(t *testing.T, sendMessage http.HandlerFunc) *tgbotapi.BotAPI {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"relay","username":"relaybot"}}`))
			return
		}
		sendMessage(w, r)
	}))
	t.Cleanup(srv.Close)

	api, err := tgbotapi.NewBotAPIWithClient("42:token", srv.URL+"/bot%s/%s", srv.Client())
	require.NoError(t, err)
	return api
}

func TestSendDisablesPreviewAndAppliesThread(t *testing.T) {
	var got url.Values
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sendMessageOK))
	})

	n := NewTelegramNotifier(api)
	err := n.Send(context.Background(), relay.Destination{ChatID: 555, ThreadID: 42}, "hello")
	require.NoError(t, err)

	assert.Equal(t, "555", got.Get("chat_id"))
	assert.Equal(t, "hello", got.Get("text"))
	assert.Equal(t, "true", got.Get("disable_web_page_preview"))
	assert.Equal(t, "42", got.Get("reply_to_message_id"))
}

func TestSendOmitsThreadForTopLevelChat(t *testing.T) {
	var got url.Values
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sendMessageOK))
	})

	n := NewTelegramNotifier(api)
	err := n.Send(context.Background(), relay.Destination{ChatID: 555}, "hello")
	require.NoError(t, err)

	assert.False(t, got.Has("reply_to_message_id"), "top-level chats must not get a thread target")
}

func TestSendClassifiesRejection(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	n := NewTelegramNotifier(api)
	err := n.Send(context.Background(), relay.Destination{ChatID: 555}, "hello")
	require.Error(t, err)

	var dErr *relay.DeliveryError
	require.True(t, errors.As(err, &dErr))
	assert.True(t, dErr.Rejected)
	assert.Equal(t, "Bad Request: chat not found", dErr.Description)
}

func TestSendReturnsOnceDeliveryBoundExpires(t *testing.T) {
	// sendMessage stalls until released, standing in for an unresponsive
	// Telegram backend.
	release := make(chan struct{})
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sendMessageOK))
	})
	t.Cleanup(func() { close(release) })

	n := NewTelegramNotifier(api)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := n.Send(ctx, relay.Destination{ChatID: 555}, "hello")
	elapsed := time.Since(start)

	require.Error(t, err)
	var dErr *relay.DeliveryError
	require.True(t, errors.As(err, &dErr))
	assert.False(t, dErr.Rejected)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, time.Second, "send must give up when the delivery bound expires")
}
