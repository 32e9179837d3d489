// Package export writes portfolio snapshots to desk-friendly formats: a
// spreadsheet for the back office and point shapefiles for GIS tooling.
package export

import (
	"path/filepath"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/visionpay/fieldops/pkg/walker"
)

// WriteXLSX writes officers and members to one workbook with a sheet each.
func WriteXLSX(path string, officers []walker.Officer, members []walker.Member) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Officers")
	if err != nil {
		return eris.Wrap(err, "export: add officers sheet")
	}
	header := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Latitude", "Longitude", "Members Assigned", "Collections Today"} {
		header.AddCell().Value = h
	}
	for _, o := range officers {
		row := sheet.AddRow()
		row.AddCell().SetInt(o.ID)
		row.AddCell().Value = o.Name
		row.AddCell().SetFloat(o.Location.Lat)
		row.AddCell().SetFloat(o.Location.Lng)
		row.AddCell().SetInt(o.MembersAssigned)
		row.AddCell().SetInt(o.CollectionsToday)
	}

	sheet, err = file.AddSheet("Members")
	if err != nil {
		return eris.Wrap(err, "export: add members sheet")
	}
	header = sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Latitude", "Longitude", "Amount", "Payment Status", "Officer ID", "Payment Date"} {
		header.AddCell().Value = h
	}
	for _, m := range members {
		row := sheet.AddRow()
		row.AddCell().SetInt(m.ID)
		row.AddCell().Value = m.Name
		row.AddCell().SetFloat(m.Location.Lat)
		row.AddCell().SetFloat(m.Location.Lng)
		row.AddCell().SetFloat(m.Amount)
		row.AddCell().Value = string(m.PaymentStatus)
		row.AddCell().SetInt(m.OfficerID)
		row.AddCell().Value = m.PaymentDate
	}

	return eris.Wrapf(file.Save(path), "export: save %s", path)
}

// WriteShapefiles writes officers.shp and members.shp point layers into
// dir. Points are X=longitude, Y=latitude per shapefile convention.
func WriteShapefiles(dir string, officers []walker.Officer, members []walker.Member) error {
	if err := writeOfficerShp(filepath.Join(dir, "officers.shp"), officers); err != nil {
		return err
	}
	return writeMemberShp(filepath.Join(dir, "members.shp"), members)
}

func writeOfficerShp(path string, officers []walker.Officer) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer w.Close()

	fields := []shp.Field{
		shp.NumberField("ID", 10),
		shp.StringField("NAME", 64),
		shp.NumberField("ASSIGNED", 10),
		shp.NumberField("COLLECTED", 10),
	}
	if err := w.SetFields(fields); err != nil {
		return eris.Wrap(err, "export: set officer fields")
	}

	for i, o := range officers {
		w.Write(&shp.Point{X: o.Location.Lng, Y: o.Location.Lat})
		w.WriteAttribute(i, 0, o.ID)
		w.WriteAttribute(i, 1, o.Name)
		w.WriteAttribute(i, 2, o.MembersAssigned)
		w.WriteAttribute(i, 3, o.CollectionsToday)
	}
	return nil
}

func writeMemberShp(path string, members []walker.Member) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer w.Close()

	fields := []shp.Field{
		shp.NumberField("ID", 10),
		shp.StringField("NAME", 64),
		shp.FloatField("AMOUNT", 13, 2),
		shp.StringField("STATUS", 16),
		shp.NumberField("OFFICER", 10),
	}
	if err := w.SetFields(fields); err != nil {
		return eris.Wrap(err, "export: set member fields")
	}

	for i, m := range members {
		w.Write(&shp.Point{X: m.Location.Lng, Y: m.Location.Lat})
		w.WriteAttribute(i, 0, m.ID)
		w.WriteAttribute(i, 1, m.Name)
		w.WriteAttribute(i, 2, m.Amount)
		w.WriteAttribute(i, 3, string(m.PaymentStatus))
		w.WriteAttribute(i, 4, m.OfficerID)
	}
	return nil
}
