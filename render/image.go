package render

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	// Decoders for the embedded image formats the host side authors with.
	_ "image/gif"
	_ "image/jpeg"
)

// ImageLoadError reports an image asset that could not be obtained or
// decoded.
type ImageLoadError struct {
	Element string
	Err     error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("image for element %q: %v", e.Element, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// imagePatch decodes data (or the loader-resolved path when data is empty)
// and scales it to w*h. Decoded patches are cached for the session; the
// cache key includes a content hash so a conditional element switching
// images gets a fresh patch per candidate.
func (s *Session) imagePatch(elementID string, data []byte, path string, w, h int) (*image.RGBA, error) {
	if len(data) == 0 {
		if path == "" {
			return nil, &ImageLoadError{Element: elementID, Err: fmt.Errorf("no image data")}
		}
		if s.loader == nil {
			return nil, &ImageLoadError{Element: elementID, Err: fmt.Errorf("no asset loader configured for %q", path)}
		}
		var err error
		data, err = s.loader(path)
		if err != nil {
			return nil, &ImageLoadError{Element: elementID, Err: err}
		}
	}

	hash := fnv.New64a()
	hash.Write(data)
	key := fmt.Sprintf("%s:%dx%d:%x", elementID, w, h, hash.Sum64())
	if p, ok := s.images[key]; ok {
		return p, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageLoadError{Element: elementID, Err: err}
	}

	patch := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(patch, patch.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	s.images[key] = patch
	return patch, nil
}

// EncodePNG encodes a rendered canvas as PNG, the frame format the
// original link carried.
func EncodePNG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
