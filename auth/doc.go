// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth checks the shared upload password.

There is one static secret per process, taken from configuration:

	if err := auth.CheckUploadPassword(r.FormValue("password"), cfg.UploadPassword); err != nil {
		// 401
	}

The comparison is exact (case and whitespace sensitive) and constant time.
The secret is not hashed; there are no per-user accounts.
*/
package auth
