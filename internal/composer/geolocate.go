package composer

import (
	"context"
	"errors"
	"fmt"
)

// Geolocator reports the device position. The hook keeps the form
// independent of any particular positioning capability.
type Geolocator func(ctx context.Context) (lat float64, lon float64, err error)

// ErrNoGeolocation means the device position could not be obtained. Callers
// should surface it as a dismissible warning and fall back to manual entry;
// it never fails a submission.
var ErrNoGeolocation = errors.New("geolocation unavailable")

// LocateImage fills a pending image's location from the device position,
// formatted to fixed precision. Manual text already entered is overwritten.
func (f *Form) LocateImage(ctx context.Context, i int, locate Geolocator) error {
	if i < 0 || i >= len(f.images) {
		return errors.New("no such image")
	}

	if locate == nil {
		return ErrNoGeolocation
	}

	lat, lon, err := locate(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoGeolocation, err)
	}

	f.images[i].Location = fmt.Sprintf("%.4f, %.4f", lat, lon)

	return nil
}
