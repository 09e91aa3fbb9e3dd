package service

import (
	"context"
	"time"

	"ai-chatroom-be/internal/constant"
	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/pkg/llm"
	"ai-chatroom-be/pkg/llm/factory"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Reply is the text to send back plus how it was produced.
type Reply struct {
	Text    string
	Backend llm.BackendKind
	Model   string
	Failed  bool
	Latency time.Duration
}

// Meta is stored alongside the response on the conversation row.
func (r Reply) Meta() map[string]interface{} {
	meta := map[string]interface{}{
		entity.GenerationMetaBackend:   string(r.Backend),
		entity.GenerationMetaLatencyMs: r.Latency.Milliseconds(),
		entity.GenerationMetaFailed:    r.Failed,
	}
	if r.Model != "" {
		meta[entity.GenerationMetaModel] = r.Model
	}
	return meta
}

// ProviderFactory builds the provider for a backend, or nil when nothing can answer.
type ProviderFactory func(backend llm.Backend, timeout time.Duration) llm.Provider

type IResponseService interface {
	// Generate always yields a reply. Failures are rendered as error text.
	Generate(ctx context.Context, prompt string) Reply
}

type responseService struct {
	settingsService ISettingsService
	newProvider     ProviderFactory
	timeout         time.Duration
	logger          logger.ILogger
	tracer          trace.Tracer
}

func NewResponseService(
	settingsService ISettingsService,
	newProvider ProviderFactory,
	timeout time.Duration,
	logger logger.ILogger,
) IResponseService {
	if newProvider == nil {
		newProvider = factory.NewProvider
	}
	return &responseService{
		settingsService: settingsService,
		newProvider:     newProvider,
		timeout:         timeout,
		logger:          logger,
		tracer:          otel.Tracer("ai-chatroom-be/response"),
	}
}

func (s *responseService) Generate(ctx context.Context, prompt string) Reply {
	ctx, span := s.tracer.Start(ctx, "llm.generate")
	defer span.End()

	start := time.Now()

	backend, err := s.settingsService.ResolveBackend(ctx)
	if err != nil {
		s.logger.Error(constant.ModuleResponse, "Failed to load settings", map[string]interface{}{
			"error": err.Error(),
		})
		span.RecordError(err)
		span.SetStatus(codes.Error, "settings unavailable")
		return Reply{
			Text:    constant.ReplyErrorPrefix + "failed to load settings",
			Backend: llm.KindUnconfigured,
			Failed:  true,
			Latency: time.Since(start),
		}
	}

	reply := Reply{
		Backend: backend.Kind(),
		Model:   llm.ModelOf(backend),
	}
	span.SetAttributes(
		attribute.String("llm.backend", string(reply.Backend)),
		attribute.String("llm.model", reply.Model),
	)

	provider := s.newProvider(backend, s.timeout)
	if provider == nil {
		reply.Text = constant.ReplyNoModelConfigured
		reply.Latency = time.Since(start)
		return reply
	}

	completion := provider.Complete(ctx, prompt)
	reply.Latency = time.Since(start)

	if !completion.OK() {
		s.logger.Warn(constant.ModuleResponse, "Generation failed", map[string]interface{}{
			"backend":     string(reply.Backend),
			"model":       reply.Model,
			"status_code": completion.Failure.StatusCode,
			"error":       completion.Failure.Error(),
		})
		span.RecordError(completion.Failure)
		span.SetStatus(codes.Error, "generation failed")
		reply.Text = constant.ReplyErrorPrefix + completion.Failure.Error()
		reply.Failed = true
		return reply
	}

	reply.Text = completion.Content
	return reply
}
