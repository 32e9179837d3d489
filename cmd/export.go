package main

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visionpay/fieldops/internal/export"
	"github.com/visionpay/fieldops/pkg/walker"
)

var (
	exportDir    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio snapshot to XLSX or shapefiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := initSession()
		if err != nil {
			return err
		}

		if err := sess.Syncer.Refresh(cmd.Context()); err != nil {
			return err
		}

		dir := exportDir
		if dir == "" {
			dir = cfg.Export.Dir
		}
		officers := sess.Store.Officers()
		members := sess.Store.Members()

		switch exportFormat {
		case "xlsx":
			return writeXLSX(dir, officers, members)
		case "shp":
			return writeShp(dir, officers, members)
		case "both":
			if err := writeXLSX(dir, officers, members); err != nil {
				return err
			}
			return writeShp(dir, officers, members)
		default:
			return eris.Errorf("unknown export format %q (want xlsx, shp, or both)", exportFormat)
		}
	},
}

func writeXLSX(dir string, officers []walker.Officer, members []walker.Member) error {
	path := filepath.Join(dir, "fieldops.xlsx")
	if err := export.WriteXLSX(path, officers, members); err != nil {
		return err
	}
	zap.L().Info("exported workbook", zap.String("path", path))
	return nil
}

func writeShp(dir string, officers []walker.Officer, members []walker.Member) error {
	if err := export.WriteShapefiles(dir, officers, members); err != nil {
		return err
	}
	zap.L().Info("exported shapefiles", zap.String("dir", dir))
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (default from config)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "output format: xlsx, shp, or both")
	rootCmd.AddCommand(exportCmd)
}
