package describe

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/swiftmarket-backend/pkg/ai"
	"github.com/angelmondragon/swiftmarket-backend/pkg/config"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/redis"
)

type fakeCompleter struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, req ai.Request) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, req.Prompt)
	return f.text, f.err
}

type outcomeCounter map[string]int

func (o outcomeCounter) DescribeOutcome(outcome string) { o[outcome]++ }

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newService(t *testing.T, c completer, cache cache, metrics outcomeRecorder) *Service {
	t.Helper()
	svc, err := NewService(Options{Completer: c, Cache: cache, CacheTTL: time.Hour, Metrics: metrics, Logger: testLogger()})
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresLogger(t *testing.T) {
	_, err := NewService(Options{})
	require.Error(t, err)
}

func TestDescribeReturnsGeneratedText(t *testing.T) {
	fc := &fakeCompleter{text: "Sleek, durable and ready for anything."}
	metrics := outcomeCounter{}
	svc := newService(t, fc, nil, metrics)

	res := svc.Describe(context.Background(), "Trail Shoes", "Fashion")
	assert.Equal(t, Result{Text: "Sleek, durable and ready for anything.", Generated: true}, res)
	require.Len(t, fc.prompts, 1)
	assert.Contains(t, fc.prompts[0], `product named "Trail Shoes" in the "Fashion" category`)
	assert.Equal(t, 1, metrics[OutcomeGenerated])
}

func TestDescribeFallbacks(t *testing.T) {
	cases := []struct {
		name    string
		c       completer
		want    string
		outcome string
	}{
		{name: "error", c: &fakeCompleter{err: errors.New("boom")}, want: FallbackFailed, outcome: OutcomeFailed},
		{name: "disabled", c: ai.New(configWithoutKey()), want: FallbackFailed, outcome: OutcomeFailed},
		{name: "no completer", c: nil, want: FallbackFailed, outcome: OutcomeFailed},
		{name: "empty", c: &fakeCompleter{text: ""}, want: FallbackEmpty, outcome: OutcomeEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metrics := outcomeCounter{}
			svc := newService(t, tc.c, nil, metrics)

			res := svc.Describe(context.Background(), "Lamp", "Home")
			assert.Equal(t, tc.want, res.Text)
			assert.False(t, res.Generated)
			assert.Equal(t, 1, metrics[tc.outcome])
		})
	}
}

func TestDescribeCachesGeneratedText(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })

	fc := &fakeCompleter{text: "Bright light, small footprint."}
	metrics := outcomeCounter{}
	svc := newService(t, fc, client, metrics)

	first := svc.Describe(context.Background(), "Desk Lamp", "Office")
	second := svc.Describe(context.Background(), "Desk Lamp", "Office")

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.True(t, second.Generated)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, 1, fc.calls)
	assert.Equal(t, 1, metrics[OutcomeCached])

	stored, err := mr.Get("sm:description:office:desk lamp")
	require.NoError(t, err)
	assert.Equal(t, "Bright light, small footprint.", stored)
	assert.Equal(t, time.Hour, mr.TTL("sm:description:office:desk lamp"))
}

func TestDescribeDoesNotCacheFallbacks(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })

	svc := newService(t, &fakeCompleter{err: errors.New("quota")}, client, nil)
	svc.Describe(context.Background(), "Desk Lamp", "Office")

	assert.False(t, mr.Exists("sm:description:office:desk lamp"))
}

func TestDescribeIgnoresCacheOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1}))
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	fc := &fakeCompleter{text: "Still works."}
	svc := newService(t, fc, client, nil)

	res := svc.Describe(context.Background(), "Lamp", "Home")
	assert.Equal(t, "Still works.", res.Text)
	assert.True(t, res.Generated)
}

func TestSuggest(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
		want []string
	}{
		{name: "json array", text: `["running shoes", "trail socks", " ", "hydration pack", "gaiters", "insoles", "extra"]`,
			want: []string{"running shoes", "trail socks", "hydration pack", "gaiters", "insoles"}},
		{name: "fenced", text: "```json\n[\"a\", \"b\"]\n```", want: []string{"a", "b"}},
		{name: "not json", text: "Here are some ideas", want: []string{}},
		{name: "error", err: errors.New("timeout"), want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(t, &fakeCompleter{text: tc.text, err: tc.err}, nil, nil)
			assert.Equal(t, tc.want, svc.Suggest(context.Background(), "shoes"))
		})
	}
}

func TestSuggestEmptyQuerySkipsCompletion(t *testing.T) {
	fc := &fakeCompleter{text: `["x"]`}
	svc := newService(t, fc, nil, nil)

	assert.Equal(t, []string{}, svc.Suggest(context.Background(), "   "))
	assert.Zero(t, fc.calls)
}

func configWithoutKey() config.OpenAIConfig {
	return config.OpenAIConfig{Model: "gpt-4o-mini"}
}
