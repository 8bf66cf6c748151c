package tests

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/res"
	"github.com/ib-77/outcome/pkg/res/pipe"

	"github.com/stretchr/testify/assert"
)

var errNonPositive = errors.New("non-positive")

func double(_ context.Context, v int) res.Result[int] {
	return res.Ok(v * 2)
}

func validatePositive(_ context.Context, v int) res.Result[int] {
	if v > 0 {
		return res.Ok(v)
	}
	return res.Err[int](errNonPositive)
}

// TestPipeline_DoubleValidateDouble runs the canonical three-stage chain:
// double, validate, double again.
func TestPipeline_DoubleValidateDouble(t *testing.T) {
	ctx := context.Background()

	out := pipe.FromValue(ctx, 5).
		Then(double).
		Then(validatePositive).
		Then(double).
		Result()

	assert.True(t, out.IsOk())
	assert.Equal(t, 20, out.Value())
}

func TestPipeline_FailedValidationSkipsLaterStages(t *testing.T) {
	ctx := context.Background()

	finalDoubleRuns := 0
	out := pipe.FromValue(ctx, -5).
		Then(double).
		Then(validatePositive).
		Then(func(ctx context.Context, v int) res.Result[int] {
			finalDoubleRuns++
			return double(ctx, v)
		}).
		Result()

	assert.True(t, out.IsErr())
	assert.Equal(t, errNonPositive, out.Err())
	assert.Equal(t, 0, finalDoubleRuns, "final stage must not run after validation failed")
}

// TestBatchProcessing drives a batch of raw strings through parse,
// validate, and format stages, then splits outcomes per element.
func TestBatchProcessing(t *testing.T) {
	ctx := context.Background()
	inputs := []string{"1", "2", "bad", "", "5"}

	outcomes := make([]res.Result[string], 0, len(inputs))
	for _, in := range inputs {
		r := pipe.Map(
			pipe.ThenTry(
				pipe.FromValue(ctx, in).
					Then(func(_ context.Context, s string) res.Result[string] {
						if s == "" {
							return res.Err[string](errors.New("empty"))
						}
						return res.Ok(s)
					}),
				func(_ context.Context, s string) (int, error) {
					return strconv.Atoi(s)
				}),
			func(_ context.Context, n int) string {
				return "val:" + strconv.Itoa(n*2)
			}).
			Result()
		outcomes = append(outcomes, r)
	}

	values, errs := res.Partition(outcomes)
	assert.Equal(t, []string{"val:2", "val:4", "val:10"}, values)
	assert.Len(t, errs, 2)

	// collecting the same batch fails on the first bad element
	collected := res.Collect(outcomes)
	assert.True(t, collected.IsErr())
	assert.EqualError(t, collected.Err(), "strconv.Atoi: parsing \"bad\": invalid syntax")
}

func TestTraverseMatchesPipelinePerElement(t *testing.T) {
	ctx := context.Background()

	r := res.Traverse([]int{1, 2, 3}, func(v int) res.Result[int] {
		return pipe.FromValue(ctx, v).
			Then(double).
			Then(validatePositive).
			Result()
	})

	assert.True(t, r.IsOk())
	assert.Equal(t, []int{2, 4, 6}, r.Value())
}
