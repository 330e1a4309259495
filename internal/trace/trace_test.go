package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	polymouse "github.com/tphakala/go-polymouse"
)

func TestReadAll(t *testing.T) {
	input := `# recorded at 100 Hz
dt,gaze_x,gaze_y,mouse_x,mouse_y,head_dx,head_dy
0.01, 100.5, 200, 10, 20, 0.25, -0.5

0.02,101,201,16777217,-3,0,0
`
	frames, err := ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.Equal(t, polymouse.Frame{
		DT:        0.01,
		Gaze:      polymouse.V2(100.5, 200),
		Mouse:     polymouse.IntVec2{X: 10, Y: 20},
		HeadDelta: polymouse.V2(0.25, -0.5),
	}, frames[0])
	assert.Equal(t, polymouse.IntVec2{X: 16777217, Y: -3}, frames[1].Mouse, "cursor keeps full integer precision")
}

func TestReadAll_NoHeader(t *testing.T) {
	frames, err := ReadAll(strings.NewReader("0.5,1,2,3,4,5,6\n"))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.InDelta(t, 0.5, frames[0].DT, 1e-7)
}

func TestReadAll_Empty(t *testing.T) {
	frames, err := ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestReadAll_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Too few fields", "dt,gaze_x,gaze_y,mouse_x,mouse_y,head_dx,head_dy\n0.01,1,2\n", "line 2: expected 7 fields, got 3"},
		{"Not a number", "0.01,1,2,3,4,5,6\n0.01,1,abc,3,4,5,6\n", "line 2: field gaze_y"},
		{"Fractional cursor", "0.01,1,2,11.9,4,5,6\n", "line 1: field mouse_x"},
		{"Cursor out of range", "0.01,1,2,3,4294967296,5,6\n", "line 1: field mouse_y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAll(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformedRow)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	rec := Record{
		Index: 3,
		Frame: polymouse.Frame{DT: 0.01},
		Output: polymouse.Output{
			Mouse:         polymouse.IntVec2{X: 10, Y: -2},
			State:         polymouse.Throwing,
			FilteredGaze:  polymouse.V2(200.5, 0),
			FixationPoint: polymouse.V2(200, 0),
		},
	}
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	want := "frame,dt,out_x,out_y,state,gaze_fx,gaze_fy,fix_x,fix_y\n" +
		"3,0.01,10,-2,throwing,200.5,0,200,0\n" +
		"3,0.01,10,-2,throwing,200.5,0,200,0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFrames_ReadBack(t *testing.T) {
	frames := []polymouse.Frame{
		{DT: 0.008, Gaze: polymouse.V2(1.5, 2.25), Mouse: polymouse.IntVec2{X: -4, Y: 9}, HeadDelta: polymouse.V2(0.125, 0)},
		{DT: 0.016, Gaze: polymouse.V2(3, 4), HeadDelta: polymouse.V2(-1, 1)},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteFrames(&buf, frames))
	assert.True(t, strings.HasPrefix(buf.String(), strings.Join(InputHeader, ",")+"\n"))

	got, err := ReadAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, frames, got)
}
