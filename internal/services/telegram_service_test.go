package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$6.50", FormatPrice(6.5))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$1,234.05", FormatPrice(1234.05))
}

func TestNotifyNewOrder(t *testing.T) {
	var got telegramMessage
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewTelegramService("bot-token", "42", zap.NewNop()).WithBaseURL(srv.URL)
	err := svc.NotifyNewOrder(OrderNotification{
		OrderID:     7,
		Items:       []OrderItemNotification{{Name: "Chicken Pizza", Quantity: 2, Price: 9}},
		TotalAmount: 18,
		UserPhone:   "+2348012345678",
		PaymentID:   "pi_1",
		Status:      "pending",
	})
	require.NoError(t, err)

	assert.Equal(t, "/botbot-token/sendMessage", path)
	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.True(t, strings.HasPrefix(got.Text, "<b>NEW ORDER #7</b>"))
	assert.Contains(t, got.Text, "2 x $9.00 = $18.00")
}

func TestNotifyNewOrder_EscapesMarkup(t *testing.T) {
	var got telegramMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewTelegramService("bot-token", "42", zap.NewNop()).WithBaseURL(srv.URL)
	err := svc.NotifyNewOrder(OrderNotification{
		OrderID:     8,
		Items:       []OrderItemNotification{{Name: "Mac & <Cheese>", Quantity: 1, Price: 4}},
		TotalAmount: 4,
		UserPhone:   "+2348012345678",
		PaymentID:   "<i>pi_2</i>",
		Status:      "pending",
	})
	require.NoError(t, err)

	assert.Contains(t, got.Text, "<b>Mac &amp; &lt;Cheese&gt;</b>")
	assert.Contains(t, got.Text, "&lt;i&gt;pi_2&lt;/i&gt;")
	assert.NotContains(t, got.Text, "<Cheese>")
	assert.NotContains(t, got.Text, "<i>")
}

func TestNotifyNewOrder_Unconfigured(t *testing.T) {
	assert.NoError(t, NewTelegramService("", "", zap.NewNop()).NotifyNewOrder(OrderNotification{}))
	assert.NoError(t, NewTelegramService("", "42", zap.NewNop()).NotifyNewOrder(OrderNotification{}))
}

func TestSendMessage_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewTelegramService("t", "42", zap.NewNop()).WithBaseURL(srv.URL).SendMessage("42", "hi")
	assert.Error(t, err)
}
