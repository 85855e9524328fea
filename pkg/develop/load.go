package develop

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/tiff"
)

func (j *Job)LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			// Is a dir, recurse into contents
			contents, err := ioutil.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if err := j.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return fmt.Errorf("load %s: %v", arg, err)
				}
			}

		default: // is a file, load it
			if err := j.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %v", arg, err)
			}
		}
	}

	return nil
}

func (j *Job)loadFile(filename string) error {
	ext := filepath.Ext(filename)

	switch strings.ToLower(ext) {

	case ".tif", ".tiff":
		in, err := j.loadTIFF(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as TIFF failed: %v", filename, err)
		}
		j.AddInput(in)

	case ".yaml":
		cfg, err := loadConfig(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as config YAML failed: %v", filename, err)
		}
		j.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)
	}

	return nil
}

func loadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

func (j *Job)loadTIFF(filename string) (Input, error) {
	// EXIF is informational only here - the calibration data a raw
	// frame actually needs never makes it into plain TIFF tags - so
	// a file without it still loads fine.
	if reader, err := os.Open(filename); err != nil {
		return Input{}, fmt.Errorf("open+r exif '%s': %v", filename, err)
	} else {
		if ex, err := exif.Decode(reader); err == nil {
			if tag, err := ex.Get(exif.ISOSpeedRatings); err == nil {
				if iso, err := tag.Int64(0); err == nil && j.Config.Verbosity > 0 {
					log.Printf("%s: shot at ISO%d\n", filepath.Base(filename), iso)
				}
			}
			if tag, err := ex.Get(exif.ExposureTime); err == nil {
				if num, denom, err := tag.Rat2(0); err == nil && j.Config.Verbosity > 0 {
					log.Printf("%s: exposure %d/%d\n", filepath.Base(filename), num, denom)
				}
			}
		}
		reader.Close()
	}

	// Re-open the file, now for the image data
	reader, err := os.Open(filename)
	if err != nil {
		return Input{}, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	img, err := tiff.Decode(reader)
	if err != nil {
		return Input{}, fmt.Errorf("tiff loading '%s': %v", filename, err)
	}

	in, err := InputFromImage(img, j.Config.InputKind)
	if err != nil {
		return Input{}, fmt.Errorf("interpreting '%s': %v", filename, err)
	}
	in.LoadFilename = filename

	return in, nil
}
