package grpcclient

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	grpcdelivery "github.com/Xausdorf/girocode/internal/delivery/grpc"
	"github.com/Xausdorf/girocode/internal/usecase/generategirocode"
)

type Client struct {
	conn *grpc.ClientConn
}

func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Generate requests a rendered code and returns the PNG bytes.
func (c *Client) Generate(ctx context.Context, in generategirocode.Input, opts ...grpc.CallOption) ([]byte, error) {
	req, err := structpb.NewStruct(map[string]any{
		"beneficiary": in.Beneficiary,
		"iban":        in.IBAN,
		"remittance":  in.Remittance,
		"amount":      in.Amount,
		"bic":         in.BIC,
		"reference":   in.Reference,
		"charset":     in.Charset,
	})
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	out := new(wrapperspb.BytesValue)
	if err := c.conn.Invoke(ctx, grpcdelivery.GenerateMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out.GetValue(), nil
}
