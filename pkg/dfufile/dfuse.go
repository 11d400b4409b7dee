package dfufile

import (
	"fmt"
	"io"
)

// dfuseBcdDFU is the bcdDFU value carried by DfuSe file suffixes.
const dfuseBcdDFU = 0x011A

// Detect reports whether r holds a DfuSe file: the first five bytes must
// spell the DfuSe prefix signature and the suffix must declare the DfuSe
// specification number. A corrupt suffix fails detection with the suffix
// parser's error. The position of r afterwards is unspecified.
func Detect(r io.ReadSeeker) (bool, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("failed to seek to file start: %w", err)
	}

	signature := make([]byte, len(prefixSignature))
	if _, err := io.ReadFull(r, signature); err != nil {
		return false, fmt.Errorf("failed to read file signature: %w", err)
	}

	suffix, err := ReadSuffix(r)
	if err != nil {
		return false, err
	}

	return string(signature) == prefixSignature && suffix.BcdDFU == dfuseBcdDFU, nil
}

// Image is one addressable firmware segment of a DfuSe file: a target
// prefix followed by its ordered elements.
type Image struct {
	TargetPrefix TargetPrefix
	Elements     []ImageElement
}

// readImage decodes a target prefix at *pos and then exactly as many
// element records as the prefix declares, advancing *pos throughout.
func readImage(r io.ReadSeeker, pos *int64) (Image, error) {
	prefix, err := ReadTargetPrefix(r, pos)
	if err != nil {
		return Image{}, err
	}

	// No preallocation from the declared count: a corrupt dwNbElements must
	// fail on the first short read, not allocate first.
	var elements []ImageElement
	for i := uint32(0); i < prefix.NbElements; i++ {
		element, err := ReadImageElement(r, pos)
		if err != nil {
			return Image{}, err
		}
		elements = append(elements, element)
	}

	return Image{TargetPrefix: prefix, Elements: elements}, nil
}

// ElementsSize returns the number of file bytes the image's element records
// and payloads occupy together. The format declares the same quantity in
// TargetPrefix.TargetSize but nothing forces the two to agree; callers that
// care about consistency compare them.
func (img Image) ElementsSize() uint64 {
	var total uint64
	for _, e := range img.Elements {
		total += ImageElementLength + uint64(e.Size)
	}
	return total
}

// DfuSeContent is the structured body of a DfuSe file: the prefix header
// and the contained images in file order.
type DfuSeContent struct {
	Prefix Prefix
	Images []Image
}

// readDfuSeContent parses the prefix at offset 0 and then exactly as many
// images as the prefix declares. r must be at least PrefixLength +
// SuffixLength bytes, which Open checks before calling.
func readDfuSeContent(r io.ReadSeeker) (*DfuSeContent, error) {
	prefix, err := ReadPrefix(r)
	if err != nil {
		return nil, err
	}

	pos := int64(PrefixLength)

	images := make([]Image, 0, prefix.Targets)
	for i := uint8(0); i < prefix.Targets; i++ {
		image, err := readImage(r, &pos)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	return &DfuSeContent{Prefix: prefix, Images: images}, nil
}

// FindImageByAlt returns the first image intended for the given alternate
// setting, or nil when no image matches.
func (c *DfuSeContent) FindImageByAlt(altSetting uint8) *Image {
	for i := range c.Images {
		if c.Images[i].TargetPrefix.AlternateSetting == altSetting {
			return &c.Images[i]
		}
	}
	return nil
}

// FindImageByName returns the first image with the given target name, or
// nil when no image matches.
func (c *DfuSeContent) FindImageByName(name string) *Image {
	for i := range c.Images {
		if c.Images[i].TargetPrefix.TargetName == name {
			return &c.Images[i]
		}
	}
	return nil
}
