package design

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charlie0129/schmitt/pkg/spec"
	"github.com/charlie0129/schmitt/pkg/utils/ptr"
)

func TestRequestResolve(t *testing.T) {
	base := DefaultOptions()

	tests := []struct {
		name     string
		req      Request
		wantSpec spec.Spec
		wantOpts Options
	}{
		{
			name:     "no overrides",
			req:      Request{},
			wantSpec: reference,
			wantOpts: base,
		},
		{
			name: "partial overrides",
			req: Request{
				VCC:     ptr.To(3.3),
				Scales:  []float64{1000},
				Workers: ptr.To(4),
			},
			wantSpec: spec.Spec{VCC: 3.3, LowTarget: 0.555, HighTarget: 0.575, TolerancePercent: 1.0},
			wantOpts: Options{Scales: []float64{1000}, Workers: 4},
		},
		{
			name: "all spec fields",
			req: Request{
				VCC:              ptr.To(12.0),
				LowTarget:        ptr.To(4.0),
				HighTarget:       ptr.To(8.0),
				TolerancePercent: ptr.To(0.1),
			},
			wantSpec: spec.Spec{VCC: 12, LowTarget: 4, HighTarget: 8, TolerancePercent: 0.1},
			wantOpts: base,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, opts := tt.req.Resolve(reference, base)
			assert.Equal(t, tt.wantSpec, s)
			assert.Equal(t, tt.wantOpts, opts)
		})
	}
}
