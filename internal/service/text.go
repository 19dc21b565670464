package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"helloapi/internal/model"
)

// Suffixes appended by each transformation.
const (
	ProcessSuffix = "abc"
	NameSuffix    = "_abc"
)

// GreetingMessage is the fixed message returned by the root route.
const GreetingMessage = "Hello World"

// TextService defines the string transformations exposed over HTTP.
// Implementations hold no state; identical input always yields identical output.
type TextService interface {
	// Process appends ProcessSuffix to text.
	Process(ctx context.Context, text string) model.Transformation

	// GetName appends NameSuffix to name.
	GetName(ctx context.Context, name string) model.Transformation

	// Greeting returns the static greeting.
	Greeting(ctx context.Context) model.Greeting
}

type textService struct {
	tracer trace.Tracer
}

// NewTextService constructs a TextService using the global tracer provider.
func NewTextService() TextService {
	return &textService{tracer: otel.Tracer("helloapi/internal/service")}
}

func (s *textService) Process(ctx context.Context, text string) model.Transformation {
	return s.transform(ctx, "TextService.Process", text, ProcessSuffix)
}

func (s *textService) GetName(ctx context.Context, name string) model.Transformation {
	return s.transform(ctx, "TextService.GetName", name, NameSuffix)
}

func (s *textService) Greeting(ctx context.Context) model.Greeting {
	_, span := s.tracer.Start(ctx, "TextService.Greeting")
	defer span.End()
	return model.Greeting{Message: GreetingMessage, Status: 200}
}

func (s *textService) transform(ctx context.Context, op, in, suffix string) model.Transformation {
	_, span := s.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.Int("input.length", len(in)),
		attribute.String("suffix", suffix),
	))
	defer span.End()

	return model.Transformation{Original: in, Modified: in + suffix}
}
