// SPDX-License-Identifier: GPL-2.0-only

/*
Package lzo1x implements LZO1X compression and decompression
(lzo1x_decompress_safe–compatible). It backs the default bsdelta block sink:
the instruction, add-delta, and extra-literal streams produced by a diff are
each buffered raw and handed to this package in one shot at Finish.

The format uses match types M1–M4 with different offset and length bounds; the
stream ends with a terminator (distance 0x4000, length 3).

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := lzo1x.Decompress(compressed, lzo1x.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed (e.g. for back-to-back compressed blocks):

	out, nRead, err := lzo1x.DecompressN(compressed, lzo1x.DefaultDecompressOptions(expectedLen))
	// advance: compressed = compressed[nRead:]

From an io.Reader (e.g. stream with known decompressed size):

	out, err := lzo1x.DecompressFromReader(r, lzo1x.DefaultDecompressOptions(expectedLen))

# Compress

Options may be nil (default level 1). Level 0 or 1 = fast LZO1X-1; 2–9 = LZO1X-999:

	out, err := lzo1x.Compress(data, nil)
	out, err := lzo1x.Compress(data, &lzo1x.CompressOptions{Level: 9})
*/
package lzo1x
