package topology

import "github.com/eak1mov/go-icostiles/tile"

// Strips are listed one per line, in the order of stripIndexCounts.
var coordIndices = [tile.NumCodes][]int{
	{ // class 1 major
		2, 0, 1, 6, 7, 51, 18, 50,
		4, 0, 3, 2, 9, 25, 28, 24,
		6, 0, 5, 4, 11, 35, 44, 40,
		7, 18, 1, 17, 2, 8, 25, 26, 24, 20, 23, 22,
		9, 28, 3, 33, 4, 10, 35, 36, 40, 34, 39, 38,
		11, 44, 5, 43, 6, 12, 51, 52, 50, 48, 49, 54,
		26, 8, 16, 17, 13, 18, 14, 19,
		36, 10, 32, 33, 27, 28, 30, 29,
		52, 12, 42, 43, 41, 44, 46, 45,
		16, 13, 15, 14,
		32, 27, 31, 30,
		42, 41, 47, 46,
		20, 26, 22, 21,
		34, 36, 38, 37,
		48, 52, 54, 53,
	},
	{ // class 1 minor
		2, 0, 1, 6, 7, 29, 13, 30,
		4, 0, 3, 2, 9, 17, 19, 18,
		6, 0, 5, 4, 11, 23, 25, 24,
		7, 13, 1, 14, 2, 8, 17, 16,
		9, 19, 3, 20, 4, 10, 23, 22,
		11, 25, 5, 26, 6, 12, 29, 28,
		8, 14, 16, 15,
		10, 20, 22, 21,
		12, 26, 28, 27,
	},
	{ // class 2 major
		0, 1, 3, 2, 33, 8, 28, 24,
		0, 3, 5, 4, 43, 10, 44, 40,
		0, 5, 1, 6, 17, 12, 18, 50,
		24, 8, 25, 2, 7, 1, 16, 17, 13, 18, 14, 19,
		40, 10, 35, 4, 9, 3, 32, 33, 27, 28, 30, 29,
		50, 12, 51, 6, 11, 5, 42, 43, 41, 44, 46, 45,
		7, 16, 25, 26, 24, 20, 23, 22,
		9, 32, 35, 36, 40, 34, 39, 38,
		11, 42, 51, 52, 50, 48, 49, 54,
		20, 26, 22, 21,
		34, 36, 38, 37,
		48, 52, 54, 53,
		16, 13, 15, 14,
		32, 27, 31, 30,
		42, 41, 47, 46,
	},
	{ // class 2 minor
		0, 1, 3, 2, 20, 8, 19, 18,
		0, 3, 5, 4, 26, 10, 25, 24,
		0, 5, 1, 6, 14, 12, 13, 30,
		18, 8, 17, 2, 7, 1, 15, 14,
		24, 10, 23, 4, 9, 3, 21, 20,
		30, 12, 29, 6, 11, 5, 27, 26,
		17, 7, 31, 33,
		23, 9, 35, 37,
		29, 11, 39, 41,
		31, 33, 32, 34,
		32, 34, 16, 15,
		35, 37, 36, 38,
		36, 38, 22, 21,
		39, 41, 40, 42,
		40, 42, 28, 27,
	},
}

// Texture coordinates index a 32x128 (major) or 32x64 (minor) texture.
var texCoords = [2][]tile.TexCoord{
	{ // major tile
		{0.296875, 0.99609375},
		{0.015625, 0.99609375},
		{0.296875, 0.92578125},
		{0.015625, 0.92578125},
		{0.296875, 0.85546875},
		{0.015625, 0.85546875},
		{0.296875, 0.78515625},
		{0.015625, 0.78515625},
		{0.609375, 0.99609375},
		{0.328125, 0.99609375},
		{0.609375, 0.92578125},
		{0.328125, 0.92578125},
		{0.609375, 0.85546875},
		{0.328125, 0.85546875},
		{0.609375, 0.78515625},
		{0.328125, 0.78515625},
		{0.921875, 0.99609375},
		{0.640625, 0.99609375},
		{0.921875, 0.92578125},
		{0.640625, 0.92578125},
		{0.921875, 0.85546875},
		{0.640625, 0.85546875},
		{0.921875, 0.78515625},
		{0.640625, 0.78515625},
		{0.296875, 0.77734375},
		{0.015625, 0.77734375},
		{0.296875, 0.70703125},
		{0.015625, 0.70703125},
		{0.296875, 0.63671875},
		{0.015625, 0.63671875},
		{0.296875, 0.56640625},
		{0.015625, 0.56640625},
		{0.296875, 0.49609375},
		{0.015625, 0.49609375},
		{0.296875, 0.42578125},
		{0.015625, 0.42578125},
		{0.609375, 0.77734375},
		{0.328125, 0.77734375},
		{0.609375, 0.70703125},
		{0.328125, 0.70703125},
		{0.609375, 0.63671875},
		{0.328125, 0.63671875},
		{0.609375, 0.56640625},
		{0.328125, 0.56640625},
		{0.609375, 0.49609375},
		{0.328125, 0.49609375},
		{0.609375, 0.42578125},
		{0.328125, 0.42578125},
		{0.921875, 0.77734375},
		{0.640625, 0.77734375},
		{0.921875, 0.70703125},
		{0.640625, 0.70703125},
		{0.921875, 0.63671875},
		{0.640625, 0.63671875},
		{0.921875, 0.56640625},
		{0.640625, 0.56640625},
		{0.921875, 0.49609375},
		{0.640625, 0.49609375},
		{0.921875, 0.42578125},
		{0.640625, 0.42578125},
		{0.296875, 0.41796875},
		{0.015625, 0.41796875},
		{0.296875, 0.34765625},
		{0.015625, 0.34765625},
		{0.296875, 0.27734375},
		{0.015625, 0.27734375},
		{0.296875, 0.20703125},
		{0.015625, 0.20703125},
		{0.609375, 0.41796875},
		{0.328125, 0.41796875},
		{0.609375, 0.34765625},
		{0.328125, 0.34765625},
		{0.609375, 0.27734375},
		{0.328125, 0.27734375},
		{0.609375, 0.20703125},
		{0.328125, 0.20703125},
		{0.921875, 0.41796875},
		{0.640625, 0.41796875},
		{0.921875, 0.34765625},
		{0.640625, 0.34765625},
		{0.921875, 0.27734375},
		{0.640625, 0.27734375},
		{0.921875, 0.20703125},
		{0.640625, 0.20703125},
		{0.296875, 0.19921875},
		{0.015625, 0.19921875},
		{0.296875, 0.12890625},
		{0.015625, 0.12890625},
		{0.609375, 0.19921875},
		{0.328125, 0.19921875},
		{0.609375, 0.12890625},
		{0.328125, 0.12890625},
		{0.921875, 0.19921875},
		{0.640625, 0.19921875},
		{0.921875, 0.12890625},
		{0.640625, 0.12890625},
		{0.296875, 0.12109375},
		{0.015625, 0.12109375},
		{0.296875, 0.05078125},
		{0.015625, 0.05078125},
		{0.609375, 0.12109375},
		{0.328125, 0.12109375},
		{0.609375, 0.05078125},
		{0.328125, 0.05078125},
		{0.921875, 0.12109375},
		{0.640625, 0.12109375},
		{0.921875, 0.05078125},
		{0.640625, 0.05078125},
	},
	{ // minor tile
		{0.296875, 0.9921875},
		{0.015625, 0.9921875},
		{0.296875, 0.8515625},
		{0.015625, 0.8515625},
		{0.296875, 0.7109375},
		{0.015625, 0.7109375},
		{0.296875, 0.5703125},
		{0.015625, 0.5703125},
		{0.609375, 0.9921875},
		{0.328125, 0.9921875},
		{0.609375, 0.8515625},
		{0.328125, 0.8515625},
		{0.609375, 0.7109375},
		{0.328125, 0.7109375},
		{0.609375, 0.5703125},
		{0.328125, 0.5703125},
		{0.921875, 0.9921875},
		{0.640625, 0.9921875},
		{0.921875, 0.8515625},
		{0.640625, 0.8515625},
		{0.921875, 0.7109375},
		{0.640625, 0.7109375},
		{0.921875, 0.5703125},
		{0.640625, 0.5703125},
		{0.296875, 0.5546875},
		{0.015625, 0.5546875},
		{0.296875, 0.4140625},
		{0.015625, 0.4140625},
		{0.296875, 0.2734375},
		{0.015625, 0.2734375},
		{0.296875, 0.1328125},
		{0.015625, 0.1328125},
		{0.609375, 0.5546875},
		{0.328125, 0.5546875},
		{0.609375, 0.4140625},
		{0.328125, 0.4140625},
		{0.609375, 0.2734375},
		{0.328125, 0.2734375},
		{0.609375, 0.1328125},
		{0.328125, 0.1328125},
		{0.921875, 0.5546875},
		{0.640625, 0.5546875},
		{0.921875, 0.4140625},
		{0.640625, 0.4140625},
		{0.921875, 0.2734375},
		{0.640625, 0.2734375},
		{0.921875, 0.1328125},
		{0.640625, 0.1328125},
		{0.296875, 0.1171875},
		{0.015625, 0.1171875},
		{0.296875, 0.5 / 64},
		{0.015625, 0.5 / 64},
		{0.609375, 0.1171875},
		{0.328125, 0.1171875},
		{0.609375, 0.5 / 64},
		{0.328125, 0.5 / 64},
		{0.921875, 0.1171875},
		{0.640625, 0.1171875},
		{0.921875, 0.5 / 64},
		{0.640625, 0.5 / 64},

		{30.5 / 32, 63.5 / 64},
		{30.5 / 32, 54.5 / 64},
		{31.5 / 32, 63.5 / 64},
		{31.5 / 32, 54.5 / 64},
		{30.5 / 32, 53.5 / 64},
		{30.5 / 32, 44.5 / 64},
		{31.5 / 32, 53.5 / 64},
		{31.5 / 32, 44.5 / 64},

		{30.5 / 32, 43.5 / 64},
		{30.5 / 32, 34.5 / 64},
		{31.5 / 32, 43.5 / 64},
		{31.5 / 32, 34.5 / 64},
		{30.5 / 32, 33.5 / 64},
		{30.5 / 32, 24.5 / 64},
		{31.5 / 32, 33.5 / 64},
		{31.5 / 32, 24.5 / 64},

		{30.5 / 32, 23.5 / 64},
		{30.5 / 32, 14.5 / 64},
		{31.5 / 32, 23.5 / 64},
		{31.5 / 32, 14.5 / 64},
		{30.5 / 32, 13.5 / 64},
		{30.5 / 32, 4.5 / 64},
		{31.5 / 32, 13.5 / 64},
		{31.5 / 32, 4.5 / 64},
	},
}
