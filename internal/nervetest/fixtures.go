package nervetest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/topology"
)

// SampleMajorCoords are the vertices of one class 1 major tile near the
// north pole, in server order.
var SampleMajorCoords = []tile.Vertex{
	{0.0696125, -0.349966, 0.934172},
	{0.114013, -0.342149, 0.932703},
	{0.0831634, -0.309029, 0.94741},
	{0.0414273, -0.317331, 0.94741},
	{0.0256002, -0.359735, 0.932703},
	{0.0531845, -0.38935, 0.919553},
	{0.0998616, -0.380065, 0.919553},
	{0.123394, -0.304456, 0.9445},
	{0.0547032, -0.275012, 0.959883},
	{0.00250886, -0.328502, 0.9445},
	{0.00829597, -0.399348, 0.916762},
	{0.0824049, -0.414278, 0.906412},
	{0.14516, -0.372125, 0.916762},
	{0.202118, -0.324425, 0.924065},
	{0.245686, -0.31454, 0.916899},
	{0.212936, -0.285435, 0.934444},
	{0.168738, -0.295021, 0.940473},
	{0.158205, -0.333632, 0.929334},
	{0.189549, -0.363185, 0.912232},
	{0.233436, -0.353516, 0.905833},
	{0.109757, -0.225267, 0.968095},
	{0.150819, -0.218747, 0.964056},
	{0.122758, -0.182566, 0.9755},
	{0.081204, -0.190081, 0.978404},
	{0.0680389, -0.232733, 0.970158},
	{0.0965518, -0.267442, 0.958725},
	{0.137531, -0.261518, 0.95535},
	{-0.0151963, -0.250121, 0.968095},
	{0.0262035, -0.241055, 0.970158},
	{-0.00228179, -0.206687, 0.978404},
	{-0.0435483, -0.215646, 0.9755},
	{-0.0556277, -0.259811, 0.964056},
	{-0.026984, -0.294242, 0.95535},
	{0.0131433, -0.284033, 0.958725},
	{-0.0625808, -0.377077, 0.924065},
	{-0.0184867, -0.368778, 0.929334},
	{-0.0429941, -0.337137, 0.940473},
	{-0.0874961, -0.345195, 0.934444},
	{-0.106615, -0.384617, 0.916899},
	{-0.0803823, -0.415939, 0.905833},
	{-0.0361353, -0.408077, 0.912232},
	{0.0200036, -0.465739, 0.884696},
	{0.0657379, -0.453871, 0.888639},
	{0.0366399, -0.427961, 0.903054},
	{-0.00848537, -0.437762, 0.899051},
	{-0.0252046, -0.475177, 0.879529},
	{0.00330095, -0.502621, 0.8645},
	{0.0489491, -0.491681, 0.869398},
	{0.159749, -0.437941, 0.884696},
	{0.205128, -0.429361, 0.879529},
	{0.175364, -0.401192, 0.899051},
	{0.129923, -0.409406, 0.903054},
	{0.112955, -0.444479, 0.888639},
	{0.142935, -0.472986, 0.869398},
	{0.189295, -0.465625, 0.8645},
}

// Coords returns deterministic raw vertices for a tile code.
func Coords(code tile.Code, seed int) []tile.Vertex {
	vertices := make([]tile.Vertex, topology.RawCoordCount(code))
	for i := range vertices {
		f := float64(seed*100 + i)
		vertices[i] = tile.Vertex{f, -f, f / 4}
	}
	return vertices
}

// Texture returns a PNG image of the size the server renders for the code:
// 32x128 for major tiles and 32x64 for minor tiles.
func Texture(code tile.Code) []byte {
	height := 64
	if code.IsMajor() {
		height = 128
	}
	img := image.NewRGBA(image.Rect(0, 0, 32, height))
	for y := range height {
		for x := range 32 {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 2), B: uint8(code * 60), A: 0xff})
		}
	}
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		panic(fmt.Sprintf("nervetest: %v", err))
	}
	return b.Bytes()
}

// Fixture builds a tile for a valid name with generated coordinates and texture.
func Fixture(name tile.Name, seed int) Tile {
	code, err := tile.Classify(name)
	if err != nil {
		panic(fmt.Sprintf("nervetest: %v", err))
	}
	return Tile{Coords: Coords(code, seed), Texture: Texture(code)}
}
