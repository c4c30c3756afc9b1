// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package alias

import "testing"

func TestResolve(t *testing.T) {
	t.Run("known Korean names resolve to provider queries", func(t *testing.T) {
		tests := []struct {
			name string
			want string
		}{
			{"서울", "Seoul"},
			{"강남구", "Gangnam-gu,Seoul,KR"},
			{"해운대구", "Haeundae-gu,Busan,KR"},
			{"분당구", "Bundang-gu,Seongnam,KR"},
			{"일산", "Ilsandong-gu,Goyang,KR"},
			{"제주도", "Jeju"},
			{"광주시", "Gwangju-si,Gyeonggi,KR"},
			{"인천 중구", "Jung-gu,Incheon,KR"},
			{"울산 남구", "Nam-gu,Ulsan,KR"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if got := Resolve(tc.name); got != tc.want {
					t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
				}
			})
		}
	})
	t.Run("unknown names pass through unchanged", func(t *testing.T) {
		for _, name := range []string{"Tokyo", "London", "", "서 울", "seoul "} {
			if got := Resolve(name); got != name {
				t.Errorf("Resolve(%q) = %q, want identity", name, got)
			}
		}
	})
	t.Run("match is byte-exact, no trimming", func(t *testing.T) {
		if got := Resolve(" 서울"); got != " 서울" {
			t.Errorf("expected leading whitespace to defeat the lookup, got %q", got)
		}
	})
	t.Run("every key resolves to its own value", func(t *testing.T) {
		for key, want := range placeAliases {
			if got := Resolve(key); got != want {
				t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
			}
		}
	})
}

func TestAmbiguous(t *testing.T) {
	t.Run("shared district names are flagged", func(t *testing.T) {
		for _, name := range []string{"중구", "남구", "북구", "서구", "동구"} {
			if !Ambiguous(name) {
				t.Errorf("expected %q to be ambiguous", name)
			}
			if !Known(name) {
				t.Errorf("expected %q to still resolve", name)
			}
		}
	})
	t.Run("qualified and unique names are not flagged", func(t *testing.T) {
		for _, name := range []string{"인천 중구", "강남구", "Tokyo"} {
			if Ambiguous(name) {
				t.Errorf("did not expect %q to be ambiguous", name)
			}
		}
	})
}
