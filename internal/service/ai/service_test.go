package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/asrlabs/advisor/backend/internal/model/chat"
)

type fakeProvider struct {
	reply string
	err   error
	block bool

	gotTranscript []chat.Message
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, transcript []chat.Message) (string, error) {
	f.gotTranscript = transcript
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerateReplyPassesTranscriptThrough(t *testing.T) {
	provider := &fakeProvider{reply: "advice"}
	svc := NewServiceWithProvider(provider, time.Second)

	transcript := []chat.Message{
		{Role: chat.RoleSystem, Content: "preamble"},
		{Role: chat.RoleUser, Content: "question"},
	}

	reply, err := svc.GenerateReply(context.Background(), transcript)
	if err != nil {
		t.Fatalf("GenerateReply err: %v", err)
	}
	if reply != "advice" {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if len(provider.gotTranscript) != 2 {
		t.Fatalf("provider saw %d messages, want 2", len(provider.gotTranscript))
	}
	if provider.gotTranscript[0].Role != chat.RoleSystem {
		t.Fatalf("provider must see the system message first, got %s", provider.gotTranscript[0].Role)
	}
}

func TestGenerateReplyWrapsProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("rate limited")}
	svc := NewServiceWithProvider(provider, time.Second)

	_, err := svc.GenerateReply(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "fake") {
		t.Fatalf("error must name the provider: %v", err)
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("error must carry the underlying message: %v", err)
	}
}

func TestGenerateReplyTimeout(t *testing.T) {
	provider := &fakeProvider{block: true}
	svc := NewServiceWithProvider(provider, 10*time.Millisecond)

	_, err := svc.GenerateReply(context.Background(), nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
