//go:build windows
// +build windows

package shell

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/go-ole/go-ole"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// IDesktopWallpaper vtable indices. IUnknown occupies 0-2.
const (
	vtblSetWallpaper              = 3
	vtblGetWallpaper              = 4
	vtblGetMonitorDevicePathAt    = 5
	vtblGetMonitorDevicePathCount = 6
	vtblSetPosition               = 10
	vtblGetPosition               = 11
)

const (
	sFalse          = 0x00000001
	rpcEChangedMode = 0x80010106
)

var (
	clsidDesktopWallpaper = ole.NewGUID("{C2CF3110-460E-4fc1-B9D0-8A1C0C9CC4BD}")
	iidIDesktopWallpaper  = ole.NewGUID("{B92B56A9-8B55-4E14-9A89-0199BBB6F93B}")

	modole32                  = windows.NewLazySystemDLL("ole32.dll")
	procCoFreeUnusedLibraries = modole32.NewProc("CoFreeUnusedLibraries")
)

// comThread runs every COM call on one goroutine locked to its OS thread,
// since the apartment initialised by CoInitializeEx belongs to that thread.
type comThread struct {
	calls chan func()
	done  chan struct{}
}

// startCOMThread runs init on a fresh locked thread and keeps serving calls if it succeeds.
// If init fails the goroutine exits still locked, which discards the thread.
func startCOMThread(init func() error) (*comThread, error) {
	t := &comThread{
		calls: make(chan func()),
		done:  make(chan struct{}),
	}
	errc := make(chan error, 1)

	go func() {
		defer close(t.done)
		runtime.LockOSThread()

		if err := init(); err != nil {
			errc <- err
			return
		}
		errc <- nil

		for fn := range t.calls {
			fn()
		}
		runtime.UnlockOSThread()
	}()

	if err := <-errc; err != nil {
		return nil, err
	}
	return t, nil
}

func (t *comThread) run(fn func() error) error {
	errc := make(chan error, 1)
	t.calls <- func() { errc <- fn() }
	return <-errc
}

// stop runs fn as the last call and waits for the thread to finish
func (t *comThread) stop(fn func() error) error {
	err := t.run(fn)
	close(t.calls)
	<-t.done
	return err
}

// DesktopWallpaper is the IDesktopWallpaper COM object of the Windows shell
type DesktopWallpaper struct {
	logger *zap.Logger
	thread *comThread
	obj    *ole.IUnknown
}

func openWindows(ctx context.Context, logger *zap.Logger) (domain.Backend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w := &DesktopWallpaper{logger: logger}
	thread, err := startCOMThread(func() error {
		if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
			var oleErr *ole.OleError
			switch {
			case errors.As(err, &oleErr) && oleErr.Code() == sFalse:
				// already initialised on this thread; still needs a matching CoUninitialize
			case errors.As(err, &oleErr) && oleErr.Code() == rpcEChangedMode:
				return fmt.Errorf("%w: COM is initialised with an incompatible threading model", domain.ErrServiceUnavailable)
			default:
				return fmt.Errorf("%w: CoInitializeEx: %w", domain.ErrServiceUnavailable, err)
			}
		}

		obj, err := ole.CreateInstance(clsidDesktopWallpaper, iidIDesktopWallpaper)
		if err != nil {
			ole.CoUninitialize()
			return fmt.Errorf("%w: activate DesktopWallpaper: %w", domain.ErrServiceUnavailable, err)
		}
		w.obj = obj
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.thread = thread
	logger.Info("Windows desktop wallpaper service activated")
	return w, nil
}

// vcall invokes an IDesktopWallpaper method. Only call on the COM thread.
func (w *DesktopWallpaper) vcall(index int, args ...uintptr) error {
	obj := uintptr(unsafe.Pointer(w.obj))
	vtbl := *(*uintptr)(unsafe.Pointer(obj))
	fn := *(*uintptr)(unsafe.Pointer(vtbl + uintptr(index)*unsafe.Sizeof(uintptr(0))))

	hr, _, _ := syscall.SyscallN(fn, append([]uintptr{obj}, args...)...)
	if int32(hr) < 0 {
		return ole.NewError(hr)
	}
	return nil
}

// takeString copies a service-allocated wide string and frees it
func takeString(p *uint16) string {
	if p == nil {
		return ""
	}
	s := windows.UTF16PtrToString(p)
	ole.CoTaskMemFree(uintptr(unsafe.Pointer(p)))
	return s
}

// wide converts s to a NUL-terminated UTF-16 string. Text that would not
// survive the conversion unchanged is an encoding error.
func wide(s string) (*uint16, error) {
	if err := checkText(s); err != nil {
		return nil, err
	}
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", domain.ErrEncoding, s, err)
	}
	return p, nil
}

// MonitorCount calls GetMonitorDevicePathCount
func (w *DesktopWallpaper) MonitorCount() (int, error) {
	var n uint32
	err := w.thread.run(func() error {
		return w.vcall(vtblGetMonitorDevicePathCount, uintptr(unsafe.Pointer(&n)))
	})
	return int(n), err
}

// MonitorID calls GetMonitorDevicePathAt
func (w *DesktopWallpaper) MonitorID(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("negative monitor index %d", index)
	}

	var id string
	err := w.thread.run(func() error {
		var p *uint16
		if err := w.vcall(vtblGetMonitorDevicePathAt, uintptr(uint32(index)), uintptr(unsafe.Pointer(&p))); err != nil {
			return err
		}
		id = takeString(p)
		return nil
	})
	return id, err
}

// Wallpaper calls GetWallpaper
func (w *DesktopWallpaper) Wallpaper(monitorID string) (string, error) {
	mid, err := wide(monitorID)
	if err != nil {
		return "", err
	}

	var path string
	err = w.thread.run(func() error {
		var p *uint16
		if err := w.vcall(vtblGetWallpaper, uintptr(unsafe.Pointer(mid)), uintptr(unsafe.Pointer(&p))); err != nil {
			return err
		}
		path = takeString(p)
		return nil
	})
	runtime.KeepAlive(mid)
	return path, err
}

// SetWallpaper calls SetWallpaper
func (w *DesktopWallpaper) SetWallpaper(monitorID, path string) error {
	mid, err := wide(monitorID)
	if err != nil {
		return err
	}
	wpath, err := wide(path)
	if err != nil {
		return err
	}

	err = w.thread.run(func() error {
		return w.vcall(vtblSetWallpaper, uintptr(unsafe.Pointer(mid)), uintptr(unsafe.Pointer(wpath)))
	})
	runtime.KeepAlive(mid)
	runtime.KeepAlive(wpath)
	if err != nil {
		return err
	}

	w.logger.Info("Windows wallpaper set", zap.String("monitor", monitorID), zap.String("path", path))
	return nil
}

// DisplayMode calls GetPosition
func (w *DesktopWallpaper) DisplayMode() (domain.DisplayMode, error) {
	var code uint32
	err := w.thread.run(func() error {
		return w.vcall(vtblGetPosition, uintptr(unsafe.Pointer(&code)))
	})
	if err != nil {
		return 0, err
	}
	return dwposMode(code)
}

// SetDisplayMode calls SetPosition
func (w *DesktopWallpaper) SetDisplayMode(mode domain.DisplayMode) error {
	code, err := dwposCode(mode)
	if err != nil {
		return err
	}
	return w.thread.run(func() error {
		return w.vcall(vtblSetPosition, uintptr(code))
	})
}

// Release drops the COM object, then frees unused libraries, then uninitialises COM.
// The runtime must outlive the object release.
func (w *DesktopWallpaper) Release() error {
	err := w.thread.stop(func() error {
		var errs error
		if w.obj != nil {
			w.obj.Release()
			w.obj = nil
		}
		if err := procCoFreeUnusedLibraries.Find(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("CoFreeUnusedLibraries: %w", err))
		} else {
			procCoFreeUnusedLibraries.Call()
		}
		ole.CoUninitialize()
		return errs
	})
	w.logger.Debug("Windows desktop wallpaper service released")
	return err
}
