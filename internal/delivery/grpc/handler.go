package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
	"github.com/Xausdorf/girocode/internal/usecase/generategirocode"
)

type Handler struct {
	generateUC *generategirocode.UseCase
	logger     *slog.Logger
}

func NewHandler(generateUC *generategirocode.UseCase, logger *slog.Logger) *Handler {
	return &Handler{generateUC: generateUC, logger: logger}
}

func (h *Handler) Generate(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	in := InputFromStruct(req)
	codeID := uuid.New().String()
	png, err := h.generateUC.ExecuteInput(in)
	if err != nil {
		code := codeFor(err)
		if code == codes.Internal {
			h.logger.Error("girocode generation failed", "code_id", codeID, "error", err)
		}
		return nil, status.Error(code, err.Error())
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(CodeIDHeader, codeID))
	h.logger.Info("girocode generated", "code_id", codeID, "charset", in.Charset)
	return wrapperspb.Bytes(png), nil
}

// InputFromStruct reads the payment fields by their JSON names. Numeric amounts are
// accepted alongside strings.
func InputFromStruct(s *structpb.Struct) generategirocode.Input {
	fields := s.GetFields()
	str := func(key string) string {
		v := fields[key]
		if n, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
			return strconv.FormatFloat(n.NumberValue, 'f', -1, 64)
		}
		return v.GetStringValue()
	}
	return generategirocode.Input{
		Beneficiary: str("beneficiary"),
		IBAN:        str("iban"),
		Remittance:  str("remittance"),
		Amount:      str("amount"),
		BIC:         str("bic"),
		Reference:   str("reference"),
		Charset:     str("charset"),
	}
}

func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, girocode.ErrInvalidArgument):
		return codes.InvalidArgument
	case errors.Is(err, girocode.ErrUnsupportedCharacter),
		errors.Is(err, girocode.ErrPayloadEmpty),
		errors.Is(err, girocode.ErrPayloadTooLarge):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
