// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"

	"github.com/shirou/gopsutil/v4/net"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// Network enumerates interfaces with their IPv4/IPv6 addresses, joins the
// per-interface byte counters by name, and runs the connectivity probe.
func (c *Collector) Network(ctx context.Context) (measurement.NetworkInfo, error) {
	ifaces, err := c.source.Interfaces(ctx)
	if err != nil {
		return measurement.NetworkInfo{}, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	counters := make(map[string]net.IOCountersStat)
	if io, err := c.source.NetIOCounters(ctx); err != nil {
		slog.Debug("interface counters unavailable", "error", err)
	} else {
		for _, s := range io {
			counters[s.Name] = s
		}
	}

	res := measurement.NetworkInfo{
		Interfaces: make(map[string]measurement.Interface, len(ifaces)),
	}

	for _, iface := range ifaces {
		entry := measurement.Interface{
			IPs: make([]measurement.Address, 0, len(iface.Addrs)),
		}
		for _, a := range iface.Addrs {
			if addr, ok := parseAddress(a.Addr); ok {
				entry.IPs = append(entry.IPs, addr)
			}
		}
		if s, ok := counters[iface.Name]; ok {
			entry.BytesSent = measurement.Ptr(s.BytesSent)
			entry.BytesRecv = measurement.Ptr(s.BytesRecv)
		}
		res.Interfaces[iface.Name] = entry
	}

	probe := c.Probe(ctx)
	res.PingOK = probe.OK()
	res.PingStdout = probe.Stdout
	res.PingStderr = probe.Stderr

	return res, nil
}

// parseAddress converts an interface address ("10.0.0.5/24", "fe80::1%eth0/64")
// into an IP family and bare address. Non-IP addresses are rejected.
func parseAddress(s string) (measurement.Address, bool) {
	raw := strings.TrimSpace(s)
	if i := strings.LastIndexByte(raw, '/'); i >= 0 {
		raw = raw[:i]
	}

	ip, err := netip.ParseAddr(raw)
	if err != nil {
		return measurement.Address{}, false
	}

	family := measurement.FamilyIPv6
	if ip.Is4() {
		family = measurement.FamilyIPv4
	}

	return measurement.Address{Family: family, Address: raw}, true
}
