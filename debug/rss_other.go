//go:build !windows

package debug

import (
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

var (
	selfOnce sync.Once
	self     *process.Process
	selfErr  error
)

// residentSetSize reports the resident set of this process.
func residentSetSize() (uint64, error) {
	selfOnce.Do(func() {
		self, selfErr = process.NewProcess(int32(os.Getpid()))
	})
	if selfErr != nil {
		return 0, selfErr
	}
	mi, err := self.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return mi.RSS, nil
}
