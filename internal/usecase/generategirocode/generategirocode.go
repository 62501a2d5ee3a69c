package generategirocode

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/Xausdorf/girocode/internal/domain/girocode TextEncoder,MatrixEncoder,Renderer
//go:generate mockgen -destination=mocks/recorder.go -package=mocks . Recorder

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
)

const (
	ReasonInvalidArgument      = "invalid_argument"
	ReasonUnsupportedCharacter = "unsupported_character"
	ReasonPayloadEmpty         = "payload_empty"
	ReasonPayloadTooLarge      = "payload_too_large"
	ReasonEncode               = "encode"
	ReasonRender               = "render"
)

// Recorder observes generation results.
type Recorder interface {
	CodeGenerated(cs girocode.CharacterSet, payloadSize int)
	CodeFailed(reason string)
}

// UseCase turns payment requests into rendered payment codes.
type UseCase struct {
	text     girocode.TextEncoder
	matrix   girocode.MatrixEncoder
	renderer girocode.Renderer
	recorder Recorder
	logger   *slog.Logger
}

func NewUseCase(
	text girocode.TextEncoder,
	matrix girocode.MatrixEncoder,
	renderer girocode.Renderer,
	recorder Recorder,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		text:     text,
		matrix:   matrix,
		renderer: renderer,
		recorder: recorder,
		logger:   logger,
	}
}

// ExecuteInput parses in and generates its payment code. Parse failures are
// reported like any other rejection.
func (uc *UseCase) ExecuteInput(in Input) ([]byte, error) {
	req, err := in.PaymentRequest()
	if err != nil {
		return nil, uc.fail(ReasonInvalidArgument, err)
	}
	return uc.Execute(req)
}

// Execute builds, validates, encodes and renders the payment code for req.
// Every failure is returned as *girocode.GenerationError.
func (uc *UseCase) Execute(req girocode.PaymentRequest) ([]byte, error) {
	payload, err := girocode.BuildPayload(req)
	if err != nil {
		return nil, uc.fail(ReasonInvalidArgument, err)
	}

	cs := req.Charset()
	outcome := girocode.Validate(payload, cs, uc.text)
	if !outcome.Valid() {
		return nil, uc.fail(reasonFor(outcome.Err), outcome.Err)
	}

	// The code carries the payload in the character set announced on its third line.
	m, err := uc.matrix.Encode(string(outcome.Encoded))
	if err != nil {
		return nil, uc.fail(ReasonEncode, fmt.Errorf("encode qr matrix: %w", err))
	}

	png, err := uc.renderer.Render(m)
	if err != nil {
		return nil, uc.fail(ReasonRender, fmt.Errorf("render qr image: %w", err))
	}

	uc.recorder.CodeGenerated(cs, outcome.Size)
	uc.logger.Debug("girocode generated", "charset", cs.String(), "payload_bytes", outcome.Size, "image_bytes", len(png))
	return png, nil
}

func (uc *UseCase) fail(reason string, err error) error {
	uc.recorder.CodeFailed(reason)
	uc.logger.Debug("girocode rejected", "reason", reason, "error", err)
	return &girocode.GenerationError{Cause: err}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, girocode.ErrUnsupportedCharacter):
		return ReasonUnsupportedCharacter
	case errors.Is(err, girocode.ErrPayloadEmpty):
		return ReasonPayloadEmpty
	default:
		return ReasonPayloadTooLarge
	}
}
