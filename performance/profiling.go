// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// Profile specifies which profiling files are to be created.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString converts a comma separated list of profile names into a
// Profile value. Valid names are NONE, CPU, MEM, TRACE and ALL. The names are
// not case sensitive.
func ParseProfileString(profile string) (Profile, error) {
	result := ProfileNone

	for _, p := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(p)) {
		case "NONE", "":
		case "CPU":
			result |= ProfileCPU
		case "MEM":
			result |= ProfileMem
		case "TRACE":
			result |= ProfileTrace
		case "ALL":
			result |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(PerformanceError, fmt.Sprintf("unknown profile type (%s)", p))
		}
	}

	return result, nil
}

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}

	s := make([]string, 0, 3)
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// RunProfiler runs the supplied function under the requested profilers. The
// profiling files are named with the filenameHeader followed by the type of
// profile.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer trace.Stop()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
			if err != nil {
				rerr = curated.Errorf(PerformanceError, err)
				return
			}
			defer f.Close()

			runtime.GC()
			err = pprof.WriteHeapProfile(f)
			if err != nil {
				rerr = curated.Errorf(PerformanceError, err)
			}
		}()
	}

	return run()
}
