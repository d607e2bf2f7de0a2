package radio

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/go-ble/ble"
	"github.com/go-ble/ble/linux"

	"github.com/mvantaa/pocketscan/internal/scan"
)

// HostBLERadio runs active scans on the machine's HCI adapter. The
// adapter is opened lazily on the first scan and registered as the
// package-default device, matching how the ble library expects to be
// driven.
type HostBLERadio struct {
	initOnce sync.Once
	initErr  error
}

// NewHostBLERadio builds a host BLE radio. Opening the adapter is
// deferred until the first Scan so construction never needs privileges.
func NewHostBLERadio() *HostBLERadio {
	return &HostBLERadio{}
}

func (r *HostBLERadio) init() error {
	r.initOnce.Do(func() {
		device, err := linux.NewDevice()
		if err != nil {
			if errors.Is(err, os.ErrPermission) {
				r.initErr = scan.NewRadioError(scan.RadioErrPermission, "ble", err)
				return
			}
			r.initErr = scan.NewRadioError(scan.RadioErrUnavailable, "ble", err)
			return
		}
		ble.SetDefaultDevice(device)
	})
	return r.initErr
}

// Scan implements scan.BLERadio. It collects every advertisement seen
// during the window, duplicates included.
func (r *HostBLERadio) Scan(ctx context.Context, window time.Duration) ([]scan.BLEAdvertisement, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	scanCtx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	var (
		mu   sync.Mutex
		advs []scan.BLEAdvertisement
	)
	handler := func(a ble.Advertisement) {
		adv := scan.BLEAdvertisement{
			Name:    a.LocalName(),
			Address: a.Addr().String(),
			RSSI:    a.RSSI(),
			TxPower: a.TxPowerLevel(),
		}
		if services := a.Services(); len(services) > 0 {
			adv.ServiceUUID = services[0].String()
		}
		mu.Lock()
		advs = append(advs, adv)
		mu.Unlock()
	}

	err := ble.Scan(scanCtx, true, handler, nil)
	switch {
	case err == nil, errors.Is(err, context.DeadlineExceeded):
		// The window elapsing is the normal way a scan ends.
	case errors.Is(err, context.Canceled):
		return nil, ctx.Err()
	default:
		return nil, scan.NewRadioError(scan.RadioErrScan, "ble", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return advs, nil
}
