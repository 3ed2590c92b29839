package operator

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const OperatorKey contextKey = "operator"

var ErrNoOperator = errors.New("operator not found")

// CurrentId retrieves the current operator's ID from the context.
// Returns ErrNoOperator if no operator is present.
func CurrentId(ctx context.Context) (string, error) {
	op, ok := ctx.Value(OperatorKey).(Operator)
	if !ok {
		log.Trace("operator not found in context")
		return "", ErrNoOperator
	}
	return op.Id, nil
}

func Current(ctx context.Context) (Operator, error) {
	op, ok := ctx.Value(OperatorKey).(Operator)
	if !ok {
		log.Trace("operator not found in context")
		return Operator{}, ErrNoOperator
	}
	return op, nil
}

func WithOperator(ctx context.Context, op Operator) context.Context {
	return context.WithValue(ctx, OperatorKey, op)
}
