// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain for Foodgram web.

Middleware is registered in (*router.Router).RegisterMiddleware; route
handlers are wrapped individually with CatchError in (*router.Router).DefineRoutes.
*/
package middleware
