/*
main.go

Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This file is part of readhuman.

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.
*/
package main

import (
	"github.com/CodeMonkeyCybersecurity/readhuman/cmd"
	"github.com/CodeMonkeyCybersecurity/readhuman/pkg/logger"
)

func main() {
	logger.Initialize()
	cmd.Execute()
}
