package spritesheet

import (
	"encoding/json"
	"io"
	"strconv"
	"time"
)

// Atlas describes how to locate and time each frame within the composite
// raster. Its JSON shape is the contract consumed by downstream
// exporters.
type Atlas struct {
	Meta   AtlasMeta    `json:"meta"`
	Frames []AtlasFrame `json:"frames"`
}

// AtlasMeta identifies the raster the atlas refers to.
type AtlasMeta struct {
	Image  string    `json:"image"`
	Format string    `json:"format"`
	Size   AtlasSize `json:"size"`
	Scale  string    `json:"scale"`
}

// AtlasSize is the raster's pixel dimensions.
type AtlasSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

// AtlasFrame is one frame's placement rectangle plus its display duration
// in milliseconds. The rectangle uses the frame's intrinsic size, not the
// cell size.
type AtlasFrame struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	W        int `json:"w"`
	H        int `json:"h"`
	Duration int `json:"duration"`
}

// Atlas builds the frame atlas for the sheet. imageName names the raster
// file in meta.image (conventionally "<base>.png"). Frame order matches
// the input frame order.
func (s *Sheet) Atlas(imageName string) *Atlas {
	a := &Atlas{
		Meta: AtlasMeta{
			Image:  imageName,
			Format: "RGBA8888",
			Size:   AtlasSize{W: s.Width, H: s.Height},
			Scale:  strconv.FormatFloat(s.scale, 'f', -1, 64),
		},
		Frames: make([]AtlasFrame, len(s.Placements)),
	}
	for i, p := range s.Placements {
		a.Frames[i] = AtlasFrame{
			X:        p.X,
			Y:        p.Y,
			W:        p.W,
			H:        p.H,
			Duration: int(p.Duration / time.Millisecond),
		}
	}
	return a
}

// WriteAtlasJSON writes the atlas for the sheet to w as indented JSON.
func (s *Sheet) WriteAtlasJSON(w io.Writer, imageName string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Atlas(imageName))
}
