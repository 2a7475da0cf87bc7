package dates

import (
	"testing"
	"time"
)

func ymd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEngine_FromFilename(t *testing.T) {
	e := NewEngine(nil, DefaultYearCutoff)

	tests := []struct {
		name     string
		filename string
		want     time.Time
		wantOK   bool
	}{
		{
			name:     "camera timestamp",
			filename: "20240315_143000.jpg",
			want:     ymd(2024, time.March, 15),
			wantOK:   true,
		},
		{
			name:     "android screenshot",
			filename: "Screenshot_20240315-143000.png",
			want:     ymd(2024, time.March, 15),
			wantOK:   true,
		},
		{
			name:     "whatsapp image",
			filename: "IMG-20230102-WA0001.jpg",
			want:     ymd(2023, time.January, 2),
			wantOK:   true,
		},
		{
			name:     "whatsapp video",
			filename: "VID-20230102-WA0042.mp4",
			want:     ymd(2023, time.January, 2),
			wantOK:   true,
		},
		{
			name:     "standard camera prefix",
			filename: "IMG_20240229.jpg",
			want:     ymd(2024, time.February, 29),
			wantOK:   true,
		},
		{
			name:     "dashed date",
			filename: "party 2024-03-15 late.jpg",
			want:     ymd(2024, time.March, 15),
			wantOK:   true,
		},
		{
			name:     "underscored date",
			filename: "2024_03_15_party.jpg",
			want:     ymd(2024, time.March, 15),
			wantOK:   true,
		},
		{
			name:     "two-digit year camera prefix maps to 2000s",
			filename: "IMG_090831.jpg",
			want:     ymd(2009, time.August, 31),
			wantOK:   true,
		},
		{
			name:     "two-digit year above cutoff maps to 1900s",
			filename: "990401_scan.jpg",
			want:     ymd(1999, time.April, 1),
			wantOK:   true,
		},
		{
			name:     "no date",
			filename: "holiday-photo.jpg",
			wantOK:   false,
		},
		{
			name:     "implausible month rejected",
			filename: "20249931_000000.jpg",
			wantOK:   false,
		},
		{
			name:     "nonexistent leap day rejected",
			filename: "20230229_120000.jpg",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.FromFilename(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("FromFilename(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("FromFilename(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestEngine_FromFolderPath(t *testing.T) {
	e := NewEngine(nil, DefaultYearCutoff)

	tests := []struct {
		name   string
		dir    string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "full date folder",
			dir:    "photos/2024-03-15 Trip",
			want:   ymd(2024, time.March, 15),
			wantOK: true,
		},
		{
			name:   "year month folder",
			dir:    "photos/2024-03",
			want:   ymd(2024, time.March, 1),
			wantOK: true,
		},
		{
			name:   "nearest folder wins over ancestor year",
			dir:    "photos/2022/2024-03-15 Trip",
			want:   ymd(2024, time.March, 15),
			wantOK: true,
		},
		{
			name:   "falls back to ancestor year folder",
			dir:    "photos/2021/vacation",
			want:   ymd(2021, time.January, 1),
			wantOK: true,
		},
		{
			name:   "compact date folder",
			dir:    "dcim/20240315",
			want:   ymd(2024, time.March, 15),
			wantOK: true,
		},
		{
			name:   "no date anywhere",
			dir:    "photos/misc/unsorted",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.FromFolderPath(tt.dir)
			if ok != tt.wantOK {
				t.Fatalf("FromFolderPath(%q) ok = %v, want %v", tt.dir, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("FromFolderPath(%q) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestEngine_Infer(t *testing.T) {
	modTime := time.Date(2020, time.June, 1, 10, 30, 0, 0, time.UTC)

	t.Run("filename beats filesystem under default priority", func(t *testing.T) {
		e := NewEngine(nil, DefaultYearCutoff)
		got, src := e.Infer("photos/misc/IMG_20240315.jpg", modTime)
		if src != SourceFilename {
			t.Errorf("source = %s, want filename", src)
		}
		if !got.Equal(ymd(2024, time.March, 15)) {
			t.Errorf("date = %v, want 2024-03-15", got)
		}
	})

	t.Run("falls through to folder name", func(t *testing.T) {
		e := NewEngine(nil, DefaultYearCutoff)
		got, src := e.Infer("photos/2023-07-04 BBQ/snapshot.jpg", modTime)
		if src != SourceFolderName {
			t.Errorf("source = %s, want folder_name", src)
		}
		if !got.Equal(ymd(2023, time.July, 4)) {
			t.Errorf("date = %v, want 2023-07-04", got)
		}
	})

	t.Run("falls through to filesystem", func(t *testing.T) {
		e := NewEngine(nil, DefaultYearCutoff)
		got, src := e.Infer("photos/misc/snapshot.jpg", modTime)
		if src != SourceFilesystem {
			t.Errorf("source = %s, want filesystem", src)
		}
		if !got.Equal(modTime) {
			t.Errorf("date = %v, want mod time", got)
		}
	})

	t.Run("custom priority is honored", func(t *testing.T) {
		e := NewEngine([]string{"filesystem", "filename"}, DefaultYearCutoff)
		_, src := e.Infer("photos/IMG_20240315.jpg", modTime)
		if src != SourceFilesystem {
			t.Errorf("source = %s, want filesystem first", src)
		}
	})

	t.Run("exhausted priority yields unknown", func(t *testing.T) {
		e := NewEngine([]string{"filename"}, DefaultYearCutoff)
		_, src := e.Infer("photos/snapshot.jpg", modTime)
		if src != SourceUnknown {
			t.Errorf("source = %s, want unknown", src)
		}
	})
}
