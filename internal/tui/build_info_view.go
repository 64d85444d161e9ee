// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-journal/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: go-journal\n")
	b.WriteString("Версия: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.BuildCommit())

	return renderPage(titleStyle.Render("ИНФОРМАЦИЯ О ПРОГРАММЕ"), b.String(), "esc: назад")
}
