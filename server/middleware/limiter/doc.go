// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter is a middleware that enforces per-network rate limiting for HTTP requests.

Clients are grouped by their IP network (see config.ServerConfig.Limiter) and
each network shares one token bucket. Requests over the limit receive the
themed 429 page.
*/
package limiter
