package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type sentMail struct {
	to, subject, body string
}

type mockMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	err   error
	block chan struct{}
	panic bool
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.block != nil {
		<-m.block
	}
	if m.panic {
		panic("smtp exploded")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return m.err
}

func (m *mockMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func newService(t *testing.T, mailer Mailer) (*DefaultNotificationService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	svc, err := NewDefaultNotificationService(mailer, zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc, logs
}

func waitFor(t *testing.T, svc *DefaultNotificationService) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := svc.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestNewDefaultNotificationService_RequiresDependencies(t *testing.T) {
	if _, err := NewDefaultNotificationService(nil, zap.NewNop()); err == nil {
		t.Error("expected error for nil mailer")
	}
	if _, err := NewDefaultNotificationService(&mockMailer{}, nil); err == nil {
		t.Error("expected error for nil logger")
	}
}

func TestSend_DeliversWrappedEscapedBody(t *testing.T) {
	mailer := &mockMailer{}
	svc, _ := newService(t, mailer)

	svc.Send("Booking successful", "Booking Id : 1, Transaction Id : <tx>", "guest@example.com")
	waitFor(t, svc)

	if mailer.count() != 1 {
		t.Fatalf("expected 1 email, got %d", mailer.count())
	}
	got := mailer.sent[0]
	if got.to != "guest@example.com" || got.subject != "Booking successful" {
		t.Errorf("unexpected envelope: %+v", got)
	}
	want := "<p>Booking Id : 1, Transaction Id : &lt;tx&gt;</p>"
	if got.body != want {
		t.Errorf("expected body %q, got %q", want, got.body)
	}
}

func TestSend_EmptyRecipientIsSkipped(t *testing.T) {
	mailer := &mockMailer{}
	svc, logs := newService(t, mailer)

	for _, to := range []string{"", "   "} {
		svc.Send("subject", "message", to)
	}
	waitFor(t, svc)

	if mailer.count() != 0 {
		t.Errorf("expected no email, got %d", mailer.count())
	}
	if n := logs.FilterMessage("notification skipped: no recipient").Len(); n != 2 {
		t.Errorf("expected 2 skip warnings, got %d", n)
	}
}

func TestSend_TransportErrorIsLoggedNotReturned(t *testing.T) {
	mailer := &mockMailer{err: errors.New("connection refused")}
	svc, logs := newService(t, mailer)

	svc.Send("subject", "message", "host@example.com")
	waitFor(t, svc)

	entries := logs.FilterMessage("failed to send email").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 error log, got %d", len(entries))
	}
	if !strings.Contains(entries[0].ContextMap()["error"].(string), "connection refused") {
		t.Errorf("expected transport error in log, got %v", entries[0].ContextMap())
	}
}

func TestSend_PanicInTransportIsRecovered(t *testing.T) {
	svc, logs := newService(t, &mockMailer{panic: true})

	svc.Send("subject", "message", "host@example.com")
	waitFor(t, svc)

	if logs.FilterMessage("notification panicked").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}

func TestSend_DoesNotBlockCaller(t *testing.T) {
	mailer := &mockMailer{block: make(chan struct{})}
	svc, _ := newService(t, mailer)

	returned := make(chan struct{})
	go func() {
		svc.Send("subject", "message", "guest@example.com")
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on the transport")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := svc.Wait(ctx); err == nil {
		t.Error("expected Wait to time out while a send is in flight")
	}

	close(mailer.block)
	waitFor(t, svc)
	if mailer.count() != 1 {
		t.Errorf("expected 1 email after unblocking, got %d", mailer.count())
	}
}
