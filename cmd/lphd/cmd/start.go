/*
Copyright © 2025 DanZai233

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DanZai233/LPH/daemon"
	"github.com/DanZai233/LPH/internal/config"
)

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().IntP("port", "p", 0, "port to listen on")
	startCmd.Flags().String("cors-origin", "", "allowed CORS origin")
	startCmd.Flags().String("data-dir", "", "directory for the JSON data stores")
	startCmd.Flags().BoolP("debug", "d", false, "enable debug logging")
	viper.BindPFlag("port", startCmd.Flags().Lookup("port"))
	viper.BindPFlag("cors_origin", startCmd.Flags().Lookup("cors-origin"))
	viper.BindPFlag("database_dir", startCmd.Flags().Lookup("data-dir"))
	viper.BindPFlag("debug", startCmd.Flags().Lookup("debug"))
}

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:           "start",
	Short:         "Start the lph daemon",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		conf, err := config.LoadConfig()
		if err != nil {
			return err
		}

		d := daemon.NewDaemon(conf)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigs
			log.Infof("received signal %v, shutting down", sig)
			if err := d.Stop(); err != nil {
				log.Errorf("failed to stop daemon: %v", err)
			}
		}()

		log.WithFields(log.Fields{
			"port":     conf.Port,
			"data_dir": conf.DataDir,
		}).Info("starting daemon")

		return d.Start()
	},
}
