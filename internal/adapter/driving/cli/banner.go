package cli

import (
	"fmt"

	"github.com/diillson/savings-post-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
   ____              _                   ____           _   
  / ___|  __ ___   _(_)_ __   __ _ ___  |  _ \ ___  ___| |_ 
  \___ \ / _' \ \ / / | '_ \ / _' / __| | |_) / _ \/ __| __|
   ___) | (_| |\ V /| | | | | (_| \__ \ |  __/ (_) \__ \ |_ 
  |____/ \__,_| \_/ |_|_| |_|\__, |___/ |_|   \___/|___/\__|
                             |___/                          
        `
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(yellow(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Savings Post CLI (v%s)", formattedVersion)))
}
