// Package batch generates codes for every row of a CSV or XLSX spreadsheet.
//
// Columns are matched by header name (given_name, paternal_surname,
// maternal_surname, birth_date, city, state, or their Spanish equivalents
// nombre, apellido_paterno, apellido_materno, fecha_nacimiento, ciudad,
// estado). Without a header row the columns are taken in that order.
//
// A row that fails validation does not stop the run: its Result carries the
// error and the remaining rows are still processed.
package batch
