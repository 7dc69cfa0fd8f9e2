package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"

	"github.com/pkg/errors"

	"github.com/tutorlink/tutorlink-go/core"
)

// form describes a request that may carry file attachments. With at least
// one file present it is encoded as multipart/form-data with scalar fields
// string-coerced; with none it degrades to the plain JSON jsonBody.
type form struct {
	jsonBody any
	fields   []field
	files    []filePart
}

type field struct {
	name  string
	value string
}

type filePart struct {
	name string
	att  core.Attachment
}

func (f *form) addString(name, value string) {
	f.fields = append(f.fields, field{name, value})
}

func (f *form) addStringPtr(name string, value *string) {
	if value != nil {
		f.addString(name, *value)
	}
}

func (f *form) addInt(name string, value int) {
	f.addString(name, strconv.Itoa(value))
}

func (f *form) addIntPtr(name string, value *int) {
	if value != nil {
		f.addInt(name, *value)
	}
}

func (f *form) addFloat(name string, value float64) {
	f.addString(name, strconv.FormatFloat(value, 'f', -1, 64))
}

func (f *form) addFloatPtr(name string, value *float64) {
	if value != nil {
		f.addFloat(name, *value)
	}
}

func (f *form) addBoolPtr(name string, value *bool) {
	if value != nil {
		f.addString(name, strconv.FormatBool(*value))
	}
}

func (f *form) addFile(name string, att core.Attachment) {
	if !att.IsZero() {
		f.files = append(f.files, filePart{name, att})
	}
}

func (f *form) hasFiles() bool { return len(f.files) > 0 }

func (f *form) encode() (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", errors.Wrap(err, "writing form field")
		}
	}
	for _, fp := range f.files {
		part, err := createFilePart(w, fp)
		if err != nil {
			return nil, "", errors.Wrap(err, "creating file part")
		}
		if _, err := part.Write(fp.att.Content); err != nil {
			return nil, "", errors.Wrap(err, "writing file part")
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "closing form")
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func createFilePart(w *multipart.Writer, fp filePart) (io.Writer, error) {
	if fp.att.ContentType == "" {
		return w.CreateFormFile(fp.name, fp.att.Filename)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fp.name, fp.att.Filename))
	h.Set("Content-Type", fp.att.ContentType)
	return w.CreatePart(h)
}
