// Package dfufile parses firmware update containers in the DFU file format
// described by the USB Device Firmware Upgrade class specification 1.1,
// including the DfuSe extensions added by STMicroelectronics (UM0391) that
// are widely used with STM32 microcontrollers.
//
// # File layout
//
// Every DFU file ends with a 16-byte suffix (all integers little-endian):
//
//	[bcdDevice(2)][idProduct(2)][idVendor(2)][bcdDFU(2)]["UFD"(3)][bLength(1)][dwCRC(4)]
//
// A DfuSe file additionally starts with an 11-byte prefix:
//
//	["DfuSe"(5)][bVersion(1)][DFUImageSize(4)][bTargets(1)]
//
// followed by bTargets images. Each image is a 274-byte target prefix:
//
//	["Target"(6)][bAlternateSetting(1)][bTargetNamed(1)][pad(3)][szTargetName(255)][dwTargetSize(4)][dwNbElements(4)]
//
// followed by dwNbElements elements, each an 8-byte record and its payload:
//
//	[dwElementAddress(4)][dwElementSize(4)][data(dwElementSize)]
//
// # Usage
//
// Open a file and walk its structure:
//
//	df, err := dfufile.Open("firmware.dfu")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer df.Close()
//
//	if content, ok := df.Content.(*dfufile.DfuSeContent); ok {
//	    for _, img := range content.Images {
//	        fmt.Printf("alt %d %q: %d elements\n",
//	            img.TargetPrefix.AlternateSetting,
//	            img.TargetPrefix.TargetName,
//	            len(img.Elements))
//	    }
//	}
//
// Verify file integrity:
//
//	crc, err := df.CalcCRC()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if crc != df.Suffix.CRC {
//	    log.Fatal("checksum mismatch")
//	}
//
// Element payloads are never loaded during parsing; read them on demand
// with ImageElement.ReadData against df.File.
//
// # Error handling
//
// Malformed files fail fast with one of the package's sentinel errors
// (ErrInsufficientFileSize and the three signature errors), matchable with
// errors.Is. Lookups that find nothing return nil rather than an error.
package dfufile
