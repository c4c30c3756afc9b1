// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package alias

// placeAliases is built once and never mutated. Values are either a bare
// city name or a "district,city,country-code" triple.
//
// District names like 중구 or 남구 exist in several cities at once. The bare
// key maps to the most populous holder and a city-qualified key ("인천 중구")
// exists for every holder, so no entry silently shadows another.
var placeAliases = map[string]string{
	// 서울특별시
	"서울":     "Seoul",
	"서울특별시":  "Seoul",
	"강남":     "Gangnam-gu,Seoul,KR",
	"강남구":    "Gangnam-gu,Seoul,KR",
	"강동":     "Gangdong-gu,Seoul,KR",
	"강동구":    "Gangdong-gu,Seoul,KR",
	"강북":     "Gangbuk-gu,Seoul,KR",
	"강북구":    "Gangbuk-gu,Seoul,KR",
	"강서":     "Gangseo-gu,Seoul,KR",
	"강서구":    "Gangseo-gu,Seoul,KR",
	"관악":     "Gwanak-gu,Seoul,KR",
	"관악구":    "Gwanak-gu,Seoul,KR",
	"광진":     "Gwangjin-gu,Seoul,KR",
	"광진구":    "Gwangjin-gu,Seoul,KR",
	"구로":     "Guro-gu,Seoul,KR",
	"구로구":    "Guro-gu,Seoul,KR",
	"금천":     "Geumcheon-gu,Seoul,KR",
	"금천구":    "Geumcheon-gu,Seoul,KR",
	"노원":     "Nowon-gu,Seoul,KR",
	"노원구":    "Nowon-gu,Seoul,KR",
	"도봉":     "Dobong-gu,Seoul,KR",
	"도봉구":    "Dobong-gu,Seoul,KR",
	"동대문":    "Dongdaemun-gu,Seoul,KR",
	"동대문구":   "Dongdaemun-gu,Seoul,KR",
	"동작":     "Dongjak-gu,Seoul,KR",
	"동작구":    "Dongjak-gu,Seoul,KR",
	"마포":     "Mapo-gu,Seoul,KR",
	"마포구":    "Mapo-gu,Seoul,KR",
	"서대문":    "Seodaemun-gu,Seoul,KR",
	"서대문구":   "Seodaemun-gu,Seoul,KR",
	"서초":     "Seocho-gu,Seoul,KR",
	"서초구":    "Seocho-gu,Seoul,KR",
	"성동":     "Seongdong-gu,Seoul,KR",
	"성동구":    "Seongdong-gu,Seoul,KR",
	"성북":     "Seongbuk-gu,Seoul,KR",
	"성북구":    "Seongbuk-gu,Seoul,KR",
	"송파":     "Songpa-gu,Seoul,KR",
	"송파구":    "Songpa-gu,Seoul,KR",
	"양천":     "Yangcheon-gu,Seoul,KR",
	"양천구":    "Yangcheon-gu,Seoul,KR",
	"영등포":    "Yeongdeungpo-gu,Seoul,KR",
	"영등포구":   "Yeongdeungpo-gu,Seoul,KR",
	"용산":     "Yongsan-gu,Seoul,KR",
	"용산구":    "Yongsan-gu,Seoul,KR",
	"은평":     "Eunpyeong-gu,Seoul,KR",
	"은평구":    "Eunpyeong-gu,Seoul,KR",
	"종로":     "Jongno-gu,Seoul,KR",
	"종로구":    "Jongno-gu,Seoul,KR",
	"서울 중구":  "Jung-gu,Seoul,KR",
	"중랑":     "Jungnang-gu,Seoul,KR",
	"중랑구":    "Jungnang-gu,Seoul,KR",

	// 부산광역시
	"부산":     "Busan",
	"부산광역시":  "Busan",
	"해운대":    "Haeundae-gu,Busan,KR",
	"해운대구":   "Haeundae-gu,Busan,KR",
	"부산진":    "Busanjin-gu,Busan,KR",
	"부산진구":   "Busanjin-gu,Busan,KR",
	"동래":     "Dongnae-gu,Busan,KR",
	"동래구":    "Dongnae-gu,Busan,KR",
	"부산 남구":  "Nam-gu,Busan,KR",
	"부산 북구":  "Buk-gu,Busan,KR",
	"부산 서구":  "Seo-gu,Busan,KR",
	"수영":     "Suyeong-gu,Busan,KR",
	"수영구":    "Suyeong-gu,Busan,KR",
	"사상":     "Sasang-gu,Busan,KR",
	"사상구":    "Sasang-gu,Busan,KR",
	"연제":     "Yeonje-gu,Busan,KR",
	"연제구":    "Yeonje-gu,Busan,KR",
	"금정":     "Geumjeong-gu,Busan,KR",
	"금정구":    "Geumjeong-gu,Busan,KR",
	"기장":     "Gijang-gun,Busan,KR",
	"기장군":    "Gijang-gun,Busan,KR",

	// 대구광역시
	"대구":     "Daegu",
	"대구광역시":  "Daegu",
	"수성":     "Suseong-gu,Daegu,KR",
	"수성구":    "Suseong-gu,Daegu,KR",
	"달서":     "Dalseo-gu,Daegu,KR",
	"달서구":    "Dalseo-gu,Daegu,KR",

	// 인천광역시
	"인천":     "Incheon",
	"인천광역시":  "Incheon",
	"남동":     "Namdong-gu,Incheon,KR",
	"남동구":    "Namdong-gu,Incheon,KR",
	"부평":     "Bupyeong-gu,Incheon,KR",
	"부평구":    "Bupyeong-gu,Incheon,KR",
	"연수":     "Yeonsu-gu,Incheon,KR",
	"연수구":    "Yeonsu-gu,Incheon,KR",
	"인천 중구":  "Jung-gu,Incheon,KR",
	"인천 서구":  "Seo-gu,Incheon,KR",
	"인천 동구":  "Dong-gu,Incheon,KR",
	"계양":     "Gyeyang-gu,Incheon,KR",
	"계양구":    "Gyeyang-gu,Incheon,KR",
	"미추홀":    "Michuhol-gu,Incheon,KR",
	"미추홀구":   "Michuhol-gu,Incheon,KR",
	"송도":     "Songdo,Incheon,KR",
	"강화":     "Ganghwa-gun,Incheon,KR",
	"강화군":    "Ganghwa-gun,Incheon,KR",

	// 광주광역시
	"광주":     "Gwangju",
	"광주광역시":  "Gwangju",
	"광산":     "Gwangsan-gu,Gwangju,KR",
	"광산구":    "Gwangsan-gu,Gwangju,KR",

	// 대전광역시
	"대전":     "Daejeon",
	"대전광역시":  "Daejeon",
	"유성":     "Yuseong-gu,Daejeon,KR",
	"유성구":    "Yuseong-gu,Daejeon,KR",
	"대전 서구":  "Seo-gu,Daejeon,KR",
	"대전 중구":  "Jung-gu,Daejeon,KR",
	"대전 동구":  "Dong-gu,Daejeon,KR",
	"대덕":     "Daedeok-gu,Daejeon,KR",
	"대덕구":    "Daedeok-gu,Daejeon,KR",

	// 울산광역시
	"울산":     "Ulsan",
	"울산광역시":  "Ulsan",
	"울산 남구":  "Nam-gu,Ulsan,KR",
	"울산 동구":  "Dong-gu,Ulsan,KR",
	"울산 북구":  "Buk-gu,Ulsan,KR",
	"울산 중구":  "Jung-gu,Ulsan,KR",
	"울주":     "Ulju-gun,Ulsan,KR",
	"울주군":    "Ulju-gun,Ulsan,KR",

	// 세종특별자치시
	"세종":      "Sejong",
	"세종시":     "Sejong",
	"세종특별자치시": "Sejong",

	// 경기도
	"수원":   "Suwon",
	"장안구":  "Jangan-gu,Suwon,KR",
	"권선구":  "Gwonseon-gu,Suwon,KR",
	"팔달구":  "Paldal-gu,Suwon,KR",
	"영통구":  "Yeongtong-gu,Suwon,KR",
	"성남":   "Seongnam",
	"분당":   "Bundang-gu,Seongnam,KR",
	"분당구":  "Bundang-gu,Seongnam,KR",
	"수정구":  "Sujeong-gu,Seongnam,KR",
	"중원구":  "Jungwon-gu,Seongnam,KR",
	"고양":   "Goyang",
	"일산":   "Ilsandong-gu,Goyang,KR",
	"일산동구": "Ilsandong-gu,Goyang,KR",
	"일산서구": "Ilsanseo-gu,Goyang,KR",
	"덕양구":  "Deogyang-gu,Goyang,KR",
	"용인":   "Yongin",
	"기흥구":  "Giheung-gu,Yongin,KR",
	"수지구":  "Suji-gu,Yongin,KR",
	"처인구":  "Cheoin-gu,Yongin,KR",
	"부천":   "Bucheon",
	"안산":   "Ansan",
	"단원구":  "Danwon-gu,Ansan,KR",
	"상록구":  "Sangnok-gu,Ansan,KR",
	"안양":   "Anyang",
	"만안구":  "Manan-gu,Anyang,KR",
	"동안구":  "Dongan-gu,Anyang,KR",
	"남양주":  "Namyangju",
	"화성":   "Hwaseong",
	"평택":   "Pyeongtaek",
	"의정부":  "Uijeongbu",
	"시흥":   "Siheung",
	"파주":   "Paju",
	"김포":   "Gimpo",
	"광명":   "Gwangmyeong",
	"광주시":  "Gwangju-si,Gyeonggi,KR",
	"군포":   "Gunpo",
	"하남":   "Hanam",
	"오산":   "Osan",
	"양주":   "Yangju",
	"이천":   "Icheon",
	"구리":   "Guri",
	"안성":   "Anseong",
	"포천":   "Pocheon",
	"의왕":   "Uiwang",
	"양평":   "Yangpyeong",
	"여주":   "Yeoju",
	"동두천":  "Dongducheon",
	"과천":   "Gwacheon",
	"가평":   "Gapyeong",
	"연천":   "Yeoncheon",

	// 강원도
	"춘천":  "Chuncheon",
	"원주":  "Wonju",
	"강릉":  "Gangneung",
	"동해":  "Donghae",
	"태백":  "Taebaek",
	"속초":  "Sokcho",
	"삼척":  "Samcheok",
	"홍천":  "Hongcheon",
	"횡성":  "Hoengseong",
	"영월":  "Yeongwol",
	"평창":  "Pyeongchang",
	"정선":  "Jeongseon",
	"철원":  "Cheorwon",
	"화천":  "Hwacheon",
	"양구":  "Yanggu",
	"인제":  "Inje",
	"고성":  "Goseong",
	"양양":  "Yangyang",
	"강원도": "Gangwon-do",

	// 충청북도
	"청주":   "Cheongju",
	"상당구":  "Sangdang-gu,Cheongju,KR",
	"서원구":  "Seowon-gu,Cheongju,KR",
	"흥덕구":  "Heungdeok-gu,Cheongju,KR",
	"청원구":  "Cheongwon-gu,Cheongju,KR",
	"충주":   "Chungju",
	"제천":   "Jecheon",
	"보은":   "Boeun",
	"옥천":   "Okcheon",
	"영동":   "Yeongdong",
	"증평":   "Jeungpyeong",
	"진천":   "Jincheon",
	"괴산":   "Goesan",
	"음성":   "Eumseong",
	"단양":   "Danyang",
	"충청북도": "Chungcheongbuk-do",

	// 충청남도
	"천안":   "Cheonan",
	"동남구":  "Dongnam-gu,Cheonan,KR",
	"서북구":  "Seobuk-gu,Cheonan,KR",
	"공주":   "Gongju",
	"보령":   "Boryeong",
	"아산":   "Asan",
	"서산":   "Seosan",
	"논산":   "Nonsan",
	"계룡":   "Gyeryong",
	"당진":   "Dangjin",
	"금산":   "Geumsan",
	"부여":   "Buyeo",
	"서천":   "Seocheon",
	"청양":   "Cheongyang",
	"홍성":   "Hongseong",
	"예산":   "Yesan",
	"태안":   "Taean",
	"충청남도": "Chungcheongnam-do",

	// 전라북도
	"전주":   "Jeonju",
	"완산구":  "Wansan-gu,Jeonju,KR",
	"덕진구":  "Deokjin-gu,Jeonju,KR",
	"군산":   "Gunsan",
	"익산":   "Iksan",
	"정읍":   "Jeongeup",
	"남원":   "Namwon",
	"김제":   "Gimje",
	"완주":   "Wanju",
	"진안":   "Jinan",
	"무주":   "Muju",
	"장수":   "Jangsu",
	"임실":   "Imsil",
	"순창":   "Sunchang",
	"고창":   "Gochang",
	"부안":   "Buan",
	"전라북도": "Jeollabuk-do",

	// 전라남도
	"목포":   "Mokpo",
	"여수":   "Yeosu",
	"순천":   "Suncheon",
	"나주":   "Naju",
	"광양":   "Gwangyang",
	"담양":   "Damyang",
	"곡성":   "Gokseong",
	"구례":   "Gurye",
	"고흥":   "Goheung",
	"보성":   "Boseong",
	"화순":   "Hwasun",
	"장흥":   "Jangheung",
	"강진":   "Gangjin",
	"해남":   "Haenam",
	"영암":   "Yeongam",
	"무안":   "Muan",
	"함평":   "Hampyeong",
	"영광":   "Yeonggwang",
	"장성":   "Jangseong",
	"완도":   "Wando",
	"진도":   "Jindo",
	"신안":   "Sinan",
	"전라남도": "Jeollanam-do",

	// 경상북도
	"포항":    "Pohang",
	"포항 남구": "Nam-gu,Pohang,KR",
	"포항 북구": "Buk-gu,Pohang,KR",
	"경주":    "Gyeongju",
	"김천":    "Gimcheon",
	"안동":    "Andong",
	"구미":    "Gumi",
	"영주":    "Yeongju",
	"영천":    "Yeongcheon",
	"상주":    "Sangju",
	"문경":    "Mungyeong",
	"경산":    "Gyeongsan",
	"군위":    "Gunwi",
	"의성":    "Uiseong",
	"청송":    "Cheongsong",
	"영양":    "Yeongyang",
	"영덕":    "Yeongdeok",
	"청도":    "Cheongdo",
	"고령":    "Goryeong",
	"성주":    "Seongju",
	"칠곡":    "Chilgok",
	"예천":    "Yecheon",
	"봉화":    "Bonghwa",
	"울진":    "Uljin",
	"울릉":    "Ulleung",
	"울릉도":   "Ulleungdo",
	"경상북도":  "Gyeongsangbuk-do",

	// 경상남도
	"창원":    "Changwon",
	"의창구":   "Uichang-gu,Changwon,KR",
	"성산구":   "Seongsan-gu,Changwon,KR",
	"마산":    "Masan,Changwon,KR",
	"마산합포구": "Masanhappo-gu,Changwon,KR",
	"마산회원구": "Masanhoewon-gu,Changwon,KR",
	"진해":    "Jinhae-gu,Changwon,KR",
	"진해구":   "Jinhae-gu,Changwon,KR",
	"진주":    "Jinju",
	"통영":    "Tongyeong",
	"사천":    "Sacheon",
	"김해":    "Gimhae",
	"밀양":    "Miryang",
	"거제":    "Geoje",
	"양산":    "Yangsan",
	"의령":    "Uiryeong",
	"함안":    "Haman",
	"창녕":    "Changnyeong",
	"고성군":   "Goseong-gun,Gyeongnam,KR",
	"남해":    "Namhae",
	"하동":    "Hadong",
	"산청":    "Sancheong",
	"함양":    "Hamyang",
	"거창":    "Geochang",
	"합천":    "Hapcheon",
	"경상남도":  "Gyeongsangnam-do",

	// 제주특별자치도
	"제주":  "Jeju",
	"제주시": "Jeju City",
	"서귀포": "Seogwipo",
	"제주도": "Jeju",

	// Bare district names shared by several cities. Each resolves to the
	// most populous holder; the qualified keys above cover the rest.
	"중구": "Jung-gu,Seoul,KR",
	"남구": "Nam-gu,Busan,KR",
	"북구": "Buk-gu,Busan,KR",
	"서구": "Seo-gu,Busan,KR",
	"동구": "Dong-gu,Incheon,KR",
}

// ambiguousDistricts marks the bare keys above that have city-qualified
// siblings in the table.
var ambiguousDistricts = map[string]struct{}{
	"중구": {},
	"남구": {},
	"북구": {},
	"서구": {},
	"동구": {},
}
